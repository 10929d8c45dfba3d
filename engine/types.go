/*
Package engine implements award interpretation for worked shifts.

PURPOSE:
  This package contains the domain model and the calculation pipeline for
  computing an employee's pay under a configurable award: day classification,
  midnight-boundary shift segmentation, daily overtime detection, base rate
  resolution, casual loading, weekend penalties, tiered overtime, and capped
  allowances. Every rule application also produces an audit step so the
  complete result can be justified clause-by-clause.

KEY CONCEPTS IN THIS FILE (types.go):
  - Date/DateTime: calendar-precision and minute-precision time values with
    fixed wire formats
  - Employee: the worker being paid, with employment type and classification
  - Shift/Break: a worked span with paid/unpaid breaks
  - PayPeriod: the calculation window
  - DayType/ShiftSegment: day classification and day-bounded shift pieces

DESIGN PRINCIPLES:
  1. Immutability: inputs are never mutated; every calculation builds fresh
     outputs from read-only inputs plus a read-only rule table
  2. Precision: all hours and money use decimal.Decimal, never binary floats
  3. Closed enums: EmploymentType and DayType are exhaustive; calculators
     switch over every variant
  4. Auditability: every rule function returns its audit step(s) alongside
     its numeric result

SEE ALSO:
  - table.go: Immutable award rule table snapshot
  - calculate.go: The per-calculation orchestrator
  - result.go: Pay lines, totals, and the audit trace
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DATE / DATETIME - Fixed wire formats, calendar semantics
// =============================================================================

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// Date is a calendar date with no time-of-day component.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	t, err := time.Parse(`"`+dateLayout+`"`, string(data))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// OnOrBefore reports whether d is on or before other.
func (d Date) OnOrBefore(other Date) bool { return !d.After(other.Time) }

// DateTime is a minute-precision point in time with no zone semantics;
// all shift times are interpreted as local wall-clock values.
type DateTime struct {
	time.Time
}

func NewDateTime(year int, month time.Month, day, hour, minute int) DateTime {
	return DateTime{time.Date(year, month, day, hour, minute, 0, 0, time.UTC)}
}

func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{t}, nil
}

func (dt DateTime) String() string { return dt.Format(dateTimeLayout) }

func (dt DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + dt.Format(dateTimeLayout) + `"`), nil
}

func (dt *DateTime) UnmarshalJSON(data []byte) error {
	t, err := time.Parse(`"`+dateTimeLayout+`"`, string(data))
	if err != nil {
		return err
	}
	dt.Time = t
	return nil
}

// DateOf returns the calendar date the instant falls on.
func (dt DateTime) DateOf() Date {
	y, m, d := dt.Date()
	return NewDate(y, m, d)
}

// NextMidnight returns 00:00 on the following calendar day.
func (dt DateTime) NextMidnight() DateTime {
	y, m, d := dt.AddDate(0, 0, 1).Date()
	return DateTime{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// MinutesUntil returns the whole minutes from dt to other.
func (dt DateTime) MinutesUntil(other DateTime) int64 {
	return int64(other.Sub(dt.Time) / time.Minute)
}

// =============================================================================
// EMPLOYMENT TYPE - Closed enum
// =============================================================================

type EmploymentType string

const (
	FullTime EmploymentType = "full_time"
	PartTime EmploymentType = "part_time"
	Casual   EmploymentType = "casual"
)

// =============================================================================
// DAY TYPE - Closed enum used for penalty and overtime routing
// =============================================================================

type DayType string

const (
	Weekday  DayType = "weekday"
	Saturday DayType = "saturday"
	Sunday   DayType = "sunday"
)

// Display returns the capitalized form used in reasoning text.
func (d DayType) Display() string {
	switch d {
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	default:
		return "Weekday"
	}
}

// =============================================================================
// EMPLOYEE
// =============================================================================

// Employee is the worker a calculation is performed for. Inputs are
// immutable: the pipeline never writes back to an Employee.
type Employee struct {
	ID                  string           `json:"id"`
	EmploymentType      EmploymentType   `json:"employment_type"`
	ClassificationCode  string           `json:"classification_code"`
	DateOfBirth         Date             `json:"date_of_birth"`
	EmploymentStartDate Date             `json:"employment_start_date"`
	BaseHourlyRate      *decimal.Decimal `json:"base_hourly_rate,omitempty"`
	Tags                []string         `json:"tags,omitempty"`
}

// IsCasual reports whether the employee attracts casual loading.
func (e Employee) IsCasual() bool { return e.EmploymentType == Casual }

// HasTag reports whether the employee carries the given tag.
func (e Employee) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Validate checks structural consistency. The calculation pipeline assumes
// well-formed input; callers at the transport boundary validate first.
func (e Employee) Validate() error {
	if e.ID == "" {
		return &InvalidEmployeeError{Field: "id", Message: "must not be empty"}
	}
	switch e.EmploymentType {
	case FullTime, PartTime, Casual:
	default:
		return &InvalidEmployeeError{Field: "employment_type", Message: "must be full_time, part_time or casual"}
	}
	if e.ClassificationCode == "" && e.BaseHourlyRate == nil {
		return &InvalidEmployeeError{Field: "classification_code", Message: "must not be empty without a rate override"}
	}
	if e.BaseHourlyRate != nil && e.BaseHourlyRate.IsNegative() {
		return &InvalidEmployeeError{Field: "base_hourly_rate", Message: "must not be negative"}
	}
	return nil
}

// =============================================================================
// SHIFT / BREAK
// =============================================================================

// Break is a pause within a shift. Only unpaid breaks reduce worked hours.
type Break struct {
	StartTime DateTime `json:"start_time"`
	EndTime   DateTime `json:"end_time"`
	IsPaid    bool     `json:"is_paid"`
}

func (b Break) durationMinutes() int64 {
	return b.StartTime.MinutesUntil(b.EndTime)
}

// Shift is a worked span. Start and end may cross midnight.
type Shift struct {
	ID        string   `json:"id"`
	Date      Date     `json:"date"`
	StartTime DateTime `json:"start_time"`
	EndTime   DateTime `json:"end_time"`
	Breaks    []Break  `json:"breaks,omitempty"`
}

// WorkedHours returns the shift span minus unpaid break minutes, in hours.
// Paid breaks are not subtracted.
func (s Shift) WorkedHours() decimal.Decimal {
	total := s.StartTime.MinutesUntil(s.EndTime)
	var unpaid int64
	for _, b := range s.Breaks {
		if !b.IsPaid {
			unpaid += b.durationMinutes()
		}
	}
	return minutesToHours(total - unpaid)
}

// Validate checks structural consistency of the shift.
func (s Shift) Validate() error {
	if s.ID == "" {
		return &InvalidShiftError{ShiftID: s.ID, Message: "shift id must not be empty"}
	}
	if s.EndTime.Before(s.StartTime.Time) {
		return &InvalidShiftError{ShiftID: s.ID, Message: "end time before start time"}
	}
	for _, b := range s.Breaks {
		if b.EndTime.Before(b.StartTime.Time) {
			return &InvalidShiftError{ShiftID: s.ID, Message: "break end time before break start time"}
		}
	}
	return nil
}

// =============================================================================
// PAY PERIOD
// =============================================================================

// PublicHoliday is a dated holiday carried on the pay period. Holidays
// round-trip through the result; penalty treatment of holidays is not
// part of this engine.
type PublicHoliday struct {
	Date   Date   `json:"date"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// PayPeriod is the calculation window, inclusive of both end dates.
type PayPeriod struct {
	StartDate      Date            `json:"start_date"`
	EndDate        Date            `json:"end_date"`
	PublicHolidays []PublicHoliday `json:"public_holidays"`
}

// ContainsDate reports whether date falls inside the period.
func (p PayPeriod) ContainsDate(date Date) bool {
	return !date.Before(p.StartDate.Time) && !date.After(p.EndDate.Time)
}

// IsPublicHoliday reports whether date matches a holiday in the period.
func (p PayPeriod) IsPublicHoliday(date Date) bool {
	for _, h := range p.PublicHolidays {
		if h.Date.Equal(date.Time) {
			return true
		}
	}
	return false
}

// =============================================================================
// SHIFT SEGMENT - Derived, never persisted
// =============================================================================

// ShiftSegment is a day-bounded piece of a shift produced by SegmentByDay.
// Segments exist only during a calculation.
type ShiftSegment struct {
	StartTime DateTime        `json:"start_time"`
	EndTime   DateTime        `json:"end_time"`
	DayType   DayType         `json:"day_type"`
	Hours     decimal.Decimal `json:"hours"`
}

// =============================================================================
// DECIMAL HELPERS
// =============================================================================

var sixty = decimal.NewFromInt(60)

// minutesToHours converts whole minutes to decimal hours.
func minutesToHours(minutes int64) decimal.Decimal {
	return decimal.NewFromInt(minutes).Div(sixty)
}

// MustParseDecimal parses a decimal literal, returning zero on failure.
// Intended for constants and tests.
func MustParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
