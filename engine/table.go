/*
table.go - Immutable award rule table snapshot

PURPOSE:
  RuleTable is the read-only rule set a calculation runs against: award
  metadata, classifications, effective-dated rates, weekend penalty
  multipliers, tiered/flat overtime multipliers, allowance rates, and the
  daily overtime threshold.

CONCURRENCY:
  A RuleTable is loaded once and never mutated afterwards. Fields are
  unexported and exposed through accessors, so a single *RuleTable can be
  shared by any number of concurrent calculations without locking.

SEE ALSO:
  - factory/award.go: Builds a RuleTable from a YAML award pack
  - rate.go: Effective-dated rate resolution against this table
*/
package engine

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TABLE COMPONENTS
// =============================================================================

// AwardMetadata identifies the award the table encodes.
type AwardMetadata struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Version   string `json:"version"`
	SourceURL string `json:"source_url"`
}

// Classification is an employee category with an associated base rate.
type Classification struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Clause      string `json:"clause"`
}

// ClassificationRate carries the weekly and hourly rate for a classification.
type ClassificationRate struct {
	Weekly decimal.Decimal `json:"weekly"`
	Hourly decimal.Decimal `json:"hourly"`
}

// AllowanceRates holds the per-shift laundry rate and its weekly cap.
type AllowanceRates struct {
	LaundryPerShift decimal.Decimal `json:"laundry_per_shift"`
	LaundryPerWeek  decimal.Decimal `json:"laundry_per_week"`
}

// RateEntry is one effective-dated rate set.
type RateEntry struct {
	EffectiveDate Date
	Rates         map[string]ClassificationRate
	Allowances    AllowanceRates
}

// PenaltyRates maps employment type to a weekend penalty multiplier.
type PenaltyRates struct {
	Clause   string
	FullTime decimal.Decimal
	PartTime decimal.Decimal
	Casual   decimal.Decimal
}

// For returns the multiplier for the given employment type.
func (p PenaltyRates) For(et EmploymentType) decimal.Decimal {
	switch et {
	case Casual:
		return p.Casual
	case PartTime:
		return p.PartTime
	default:
		return p.FullTime
	}
}

// OvertimeRates maps employment type to an overtime multiplier.
type OvertimeRates struct {
	FullTime decimal.Decimal
	PartTime decimal.Decimal
	Casual   decimal.Decimal
}

// For returns the multiplier for the given employment type.
func (o OvertimeRates) For(et EmploymentType) decimal.Decimal {
	switch et {
	case Casual:
		return o.Casual
	case PartTime:
		return o.PartTime
	default:
		return o.FullTime
	}
}

// WeekdayOvertime holds the two weekday overtime tiers.
type WeekdayOvertime struct {
	Clause        string
	FirstTwoHours OvertimeRates
	AfterTwoHours OvertimeRates
}

// WeekendOvertime holds the flat weekend overtime multipliers per day.
type WeekendOvertime struct {
	Clause   string
	Saturday OvertimeRates
	Sunday   OvertimeRates
}

// =============================================================================
// RULE TABLE
// =============================================================================

// RuleTable is the immutable award rule snapshot.
type RuleTable struct {
	award                  AwardMetadata
	classifications        map[string]Classification
	rates                  []RateEntry // ascending by effective date
	saturday               PenaltyRates
	sunday                 PenaltyRates
	weekdayOvertime        WeekdayOvertime
	weekendOvertime        WeekendOvertime
	dailyOvertimeThreshold decimal.Decimal
}

// NewRuleTable assembles a snapshot. Rate entries are sorted ascending by
// effective date; the caller's slice is copied, not retained.
func NewRuleTable(
	award AwardMetadata,
	classifications map[string]Classification,
	rates []RateEntry,
	saturday, sunday PenaltyRates,
	weekdayOvertime WeekdayOvertime,
	weekendOvertime WeekendOvertime,
	dailyOvertimeThreshold decimal.Decimal,
) *RuleTable {
	sorted := make([]RateEntry, len(rates))
	copy(sorted, rates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveDate.Before(sorted[j].EffectiveDate.Time)
	})

	cls := make(map[string]Classification, len(classifications))
	for code, c := range classifications {
		cls[code] = c
	}

	return &RuleTable{
		award:                  award,
		classifications:        cls,
		rates:                  sorted,
		saturday:               saturday,
		sunday:                 sunday,
		weekdayOvertime:        weekdayOvertime,
		weekendOvertime:        weekendOvertime,
		dailyOvertimeThreshold: dailyOvertimeThreshold,
	}
}

// Award returns the award metadata.
func (t *RuleTable) Award() AwardMetadata { return t.award }

// Classifications returns a copy of the classification map.
func (t *RuleTable) Classifications() map[string]Classification {
	out := make(map[string]Classification, len(t.classifications))
	for code, c := range t.classifications {
		out[code] = c
	}
	return out
}

// Classification looks up a classification by code.
func (t *RuleTable) Classification(code string) (Classification, error) {
	c, ok := t.classifications[code]
	if !ok {
		return Classification{}, &ClassificationNotFoundError{Code: code}
	}
	return c, nil
}

// HasClassification reports whether the code is present in the table.
func (t *RuleTable) HasClassification(code string) bool {
	_, ok := t.classifications[code]
	return ok
}

// rateEntryFor returns the most recent rate entry effective on or before
// the given date, scanning backward through the ascending-sorted entries.
func (t *RuleTable) rateEntryFor(date Date) (RateEntry, bool) {
	for i := len(t.rates) - 1; i >= 0; i-- {
		if t.rates[i].EffectiveDate.OnOrBefore(date) {
			return t.rates[i], true
		}
	}
	return RateEntry{}, false
}

// HourlyRate returns the hourly rate for a classification from the most
// recent rate entry effective on or before date.
func (t *RuleTable) HourlyRate(classification string, date Date) (decimal.Decimal, error) {
	entry, ok := t.rateEntryFor(date)
	if !ok {
		return decimal.Zero, &RateNotFoundError{Classification: classification, Date: date}
	}
	rate, ok := entry.Rates[classification]
	if !ok {
		return decimal.Zero, &RateNotFoundError{Classification: classification, Date: date}
	}
	return rate.Hourly, nil
}

// WeeklyRate returns the weekly rate for a classification from the most
// recent rate entry effective on or before date.
func (t *RuleTable) WeeklyRate(classification string, date Date) (decimal.Decimal, error) {
	entry, ok := t.rateEntryFor(date)
	if !ok {
		return decimal.Zero, &RateNotFoundError{Classification: classification, Date: date}
	}
	rate, ok := entry.Rates[classification]
	if !ok {
		return decimal.Zero, &RateNotFoundError{Classification: classification, Date: date}
	}
	return rate.Weekly, nil
}

// rateEffectiveDate returns the effective date of the rate entry used for
// the given date, for audit reporting.
func (t *RuleTable) rateEffectiveDate(date Date) (Date, bool) {
	entry, ok := t.rateEntryFor(date)
	if !ok {
		return Date{}, false
	}
	return entry.EffectiveDate, true
}

// AllowanceRates returns the allowance rates from the most recent rate
// entry effective on or before date.
func (t *RuleTable) AllowanceRates(date Date) (AllowanceRates, error) {
	entry, ok := t.rateEntryFor(date)
	if !ok {
		return AllowanceRates{}, &ConfigNotFoundError{Path: "no rate entry effective on " + date.String()}
	}
	return entry.Allowances, nil
}

// Penalty returns the weekend penalty multiplier and its clause reference
// for the given day type and employment type. Weekday has no penalty.
func (t *RuleTable) Penalty(day DayType, et EmploymentType) (decimal.Decimal, string, error) {
	switch day {
	case Saturday:
		return t.saturday.For(et), t.saturday.Clause, nil
	case Sunday:
		return t.sunday.For(et), t.sunday.Clause, nil
	default:
		return decimal.Zero, "", &CalculationError{Message: "no penalty rate for day type " + string(day)}
	}
}

// WeekdayOvertime returns the tiered weekday overtime configuration.
func (t *RuleTable) WeekdayOvertime() WeekdayOvertime { return t.weekdayOvertime }

// WeekendOvertime returns the flat weekend overtime configuration.
func (t *RuleTable) WeekendOvertime() WeekendOvertime { return t.weekendOvertime }

// DailyOvertimeThreshold returns the ordinary-hours threshold per shift.
func (t *RuleTable) DailyOvertimeThreshold() decimal.Decimal { return t.dailyOvertimeThreshold }
