/*
Package factory provides YAML to Go rule table conversion.

PURPOSE:
  Converts a YAML award pack on disk into an engine.RuleTable. This keeps
  award rules out of code - a rate change or a new classification is a
  YAML edit, not a release.

PACK LAYOUT:
  <dir>/
    award.yaml            # code, name, version, source_url
    classifications.yaml  # classification code -> name/description/clause
    penalties.yaml        # weekend penalties + overtime configuration
    rates/
      2025-07-01.yaml     # one file per effective date

YAML SCHEMA (penalties.yaml):
  penalties:
    saturday: {clause, full_time, part_time, casual}
    sunday:   {clause, full_time, part_time, casual}
  overtime:
    daily_threshold_hours: 8
    weekday:
      clause: 25.1(a)(i)(A)
      first_two_hours: {full_time, part_time, casual}
      after_two_hours:  {full_time, part_time, casual}
    weekend:
      clause: 25.1(a)(i)(B)
      saturday: {full_time, part_time, casual}
      sunday:   {full_time, part_time, casual}

KEY FEATURES:
  - Monetary scalars are read as text and parsed into exact decimals,
    never through a float
  - Validates the pack structure with distinct not-found vs parse errors
  - Rate files are effective-dated; the engine picks the right one per date
  - The loaded table is immutable and safe for concurrent calculations

SEE ALSO:
  - engine/table.go: RuleTable definition and lookup methods
  - awards/ma000018/: The Aged Care Award pack shipped with the server
*/
package factory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/warp/award-engine/engine"
)

// =============================================================================
// YAML SCHEMA TYPES
// =============================================================================
// Decimal-valued fields are declared as strings so the YAML text survives
// verbatim into decimal.NewFromString.

// awardYAML is the award.yaml document.
type awardYAML struct {
	Code      string `yaml:"code"`
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
	SourceURL string `yaml:"source_url"`
}

// classificationsYAML is the classifications.yaml document.
type classificationsYAML struct {
	Classifications map[string]classificationYAML `yaml:"classifications"`
}

type classificationYAML struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Clause      string `yaml:"clause"`
}

// penaltiesYAML is the penalties.yaml document.
type penaltiesYAML struct {
	Penalties struct {
		Saturday penaltyRatesYAML `yaml:"saturday"`
		Sunday   penaltyRatesYAML `yaml:"sunday"`
	} `yaml:"penalties"`
	Overtime struct {
		DailyThresholdHours int `yaml:"daily_threshold_hours"`
		Weekday             struct {
			Clause        string            `yaml:"clause"`
			FirstTwoHours overtimeRatesYAML `yaml:"first_two_hours"`
			AfterTwoHours overtimeRatesYAML `yaml:"after_two_hours"`
		} `yaml:"weekday"`
		Weekend struct {
			Clause   string            `yaml:"clause"`
			Saturday overtimeRatesYAML `yaml:"saturday"`
			Sunday   overtimeRatesYAML `yaml:"sunday"`
		} `yaml:"weekend"`
	} `yaml:"overtime"`
}

type penaltyRatesYAML struct {
	Clause   string `yaml:"clause"`
	FullTime string `yaml:"full_time"`
	PartTime string `yaml:"part_time"`
	Casual   string `yaml:"casual"`
}

type overtimeRatesYAML struct {
	FullTime string `yaml:"full_time"`
	PartTime string `yaml:"part_time"`
	Casual   string `yaml:"casual"`
}

// rateFileYAML is one effective-dated rates/<date>.yaml document.
type rateFileYAML struct {
	EffectiveDate string                            `yaml:"effective_date"`
	Rates         map[string]classificationRateYAML `yaml:"rates"`
	Allowances    allowancesYAML                    `yaml:"allowances"`
}

type classificationRateYAML struct {
	Weekly string `yaml:"weekly"`
	Hourly string `yaml:"hourly"`
}

type allowancesYAML struct {
	LaundryPerShift string `yaml:"laundry_per_shift"`
	LaundryPerWeek  string `yaml:"laundry_per_week"`
}

// =============================================================================
// LOADING
// =============================================================================

// LoadAward reads an award pack directory and builds a rule table.
func LoadAward(dir string) (*engine.RuleTable, error) {
	var award awardYAML
	if err := loadYAML(filepath.Join(dir, "award.yaml"), &award); err != nil {
		return nil, err
	}

	var classifications classificationsYAML
	if err := loadYAML(filepath.Join(dir, "classifications.yaml"), &classifications); err != nil {
		return nil, err
	}

	penaltiesPath := filepath.Join(dir, "penalties.yaml")
	var penalties penaltiesYAML
	if err := loadYAML(penaltiesPath, &penalties); err != nil {
		return nil, err
	}

	rates, err := loadRates(filepath.Join(dir, "rates"))
	if err != nil {
		return nil, err
	}

	cls := make(map[string]engine.Classification, len(classifications.Classifications))
	for code, c := range classifications.Classifications {
		cls[code] = engine.Classification{
			Name:        c.Name,
			Description: c.Description,
			Clause:      c.Clause,
		}
	}

	saturday, err := parsePenaltyRates(penalties.Penalties.Saturday, penaltiesPath)
	if err != nil {
		return nil, err
	}
	sunday, err := parsePenaltyRates(penalties.Penalties.Sunday, penaltiesPath)
	if err != nil {
		return nil, err
	}

	tier1, err := parseOvertimeRates(penalties.Overtime.Weekday.FirstTwoHours, penaltiesPath)
	if err != nil {
		return nil, err
	}
	tier2, err := parseOvertimeRates(penalties.Overtime.Weekday.AfterTwoHours, penaltiesPath)
	if err != nil {
		return nil, err
	}
	weekendSat, err := parseOvertimeRates(penalties.Overtime.Weekend.Saturday, penaltiesPath)
	if err != nil {
		return nil, err
	}
	weekendSun, err := parseOvertimeRates(penalties.Overtime.Weekend.Sunday, penaltiesPath)
	if err != nil {
		return nil, err
	}

	threshold := engine.DefaultDailyOvertimeThreshold
	if penalties.Overtime.DailyThresholdHours > 0 {
		threshold = decimal.NewFromInt(int64(penalties.Overtime.DailyThresholdHours))
	}

	return engine.NewRuleTable(
		engine.AwardMetadata{
			Code:      award.Code,
			Name:      award.Name,
			Version:   award.Version,
			SourceURL: award.SourceURL,
		},
		cls,
		rates,
		saturday,
		sunday,
		engine.WeekdayOvertime{
			Clause:        penalties.Overtime.Weekday.Clause,
			FirstTwoHours: tier1,
			AfterTwoHours: tier2,
		},
		engine.WeekendOvertime{
			Clause:   penalties.Overtime.Weekend.Clause,
			Saturday: weekendSat,
			Sunday:   weekendSun,
		},
		threshold,
	), nil
}

func loadYAML(path string, out any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &engine.ConfigNotFoundError{Path: path}
		}
		return &engine.ConfigParseError{Path: path, Message: err.Error()}
	}
	if err := yaml.Unmarshal(content, out); err != nil {
		return &engine.ConfigParseError{Path: path, Message: err.Error()}
	}
	return nil
}

func loadRates(dir string) ([]engine.RateEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &engine.ConfigNotFoundError{Path: dir}
	}

	var rates []engine.RateEntry
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		var file rateFileYAML
		if err := loadYAML(path, &file); err != nil {
			return nil, err
		}

		rate, err := parseRateFile(file, path)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}

	if len(rates) == 0 {
		return nil, &engine.ConfigNotFoundError{Path: dir + " (no rate files found)"}
	}
	return rates, nil
}

// =============================================================================
// PARSING HELPERS
// =============================================================================

func parseRateFile(file rateFileYAML, path string) (engine.RateEntry, error) {
	effectiveDate, err := engine.ParseDate(file.EffectiveDate)
	if err != nil {
		return engine.RateEntry{}, &engine.ConfigParseError{
			Path: path, Message: "invalid effective_date: " + err.Error()}
	}

	classRates := make(map[string]engine.ClassificationRate, len(file.Rates))
	for code, r := range file.Rates {
		weekly, err := parseDecimal(r.Weekly, path, code+".weekly")
		if err != nil {
			return engine.RateEntry{}, err
		}
		hourly, err := parseDecimal(r.Hourly, path, code+".hourly")
		if err != nil {
			return engine.RateEntry{}, err
		}
		classRates[code] = engine.ClassificationRate{Weekly: weekly, Hourly: hourly}
	}

	perShift, err := parseDecimal(file.Allowances.LaundryPerShift, path, "allowances.laundry_per_shift")
	if err != nil {
		return engine.RateEntry{}, err
	}
	perWeek, err := parseDecimal(file.Allowances.LaundryPerWeek, path, "allowances.laundry_per_week")
	if err != nil {
		return engine.RateEntry{}, err
	}

	return engine.RateEntry{
		EffectiveDate: effectiveDate,
		Rates:         classRates,
		Allowances: engine.AllowanceRates{
			LaundryPerShift: perShift,
			LaundryPerWeek:  perWeek,
		},
	}, nil
}

func parsePenaltyRates(y penaltyRatesYAML, path string) (engine.PenaltyRates, error) {
	fullTime, err := parseDecimal(y.FullTime, path, "full_time")
	if err != nil {
		return engine.PenaltyRates{}, err
	}
	partTime, err := parseDecimal(y.PartTime, path, "part_time")
	if err != nil {
		return engine.PenaltyRates{}, err
	}
	casual, err := parseDecimal(y.Casual, path, "casual")
	if err != nil {
		return engine.PenaltyRates{}, err
	}
	return engine.PenaltyRates{
		Clause:   y.Clause,
		FullTime: fullTime,
		PartTime: partTime,
		Casual:   casual,
	}, nil
}

func parseOvertimeRates(y overtimeRatesYAML, path string) (engine.OvertimeRates, error) {
	fullTime, err := parseDecimal(y.FullTime, path, "full_time")
	if err != nil {
		return engine.OvertimeRates{}, err
	}
	partTime, err := parseDecimal(y.PartTime, path, "part_time")
	if err != nil {
		return engine.OvertimeRates{}, err
	}
	casual, err := parseDecimal(y.Casual, path, "casual")
	if err != nil {
		return engine.OvertimeRates{}, err
	}
	return engine.OvertimeRates{FullTime: fullTime, PartTime: partTime, Casual: casual}, nil
}

func parseDecimal(s, path, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &engine.ConfigParseError{
			Path: path, Message: fmt.Sprintf("invalid decimal for %s: %q", field, s)}
	}
	return d, nil
}
