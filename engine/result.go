/*
result.go - Calculation outputs: pay lines, allowances, totals, audit trace

PURPOSE:
  Defines everything a calculation produces. Pay lines and allowances carry
  exact decimal amounts; the audit trace records every rule application with
  its inputs, outputs, and a human-readable justification tied to an award
  clause reference.

WIRE FORMAT:
  - Decimals serialize as strings (shopspring default), never binary floats
  - Dates as 2006-01-02, datetimes as 2006-01-02T15:04:05
  - Pay categories as lowercase snake_case tags

SEE ALSO:
  - calculate.go: Assembles CalculationResult and owns the step counter
  - types.go: Input model
*/
package engine

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// PAY CATEGORY - Closed set of wire tags
// =============================================================================

type PayCategory string

const (
	CategoryOrdinary       PayCategory = "ordinary"
	CategoryOrdinaryCasual PayCategory = "ordinary_casual"
	CategorySaturday       PayCategory = "saturday"
	CategorySaturdayCasual PayCategory = "saturday_casual"
	CategorySunday         PayCategory = "sunday"
	CategorySundayCasual   PayCategory = "sunday_casual"

	// Overtime categories deliberately do not encode employment type:
	// a casual's tier 1 line is still tagged overtime150 even though the
	// embedded rate carries the loading. Known modeling compromise kept
	// for category compatibility.
	CategoryOvertime150 PayCategory = "overtime150"
	CategoryOvertime200 PayCategory = "overtime200"
)

// IsOrdinary reports whether the category counts toward ordinary hours.
func (c PayCategory) IsOrdinary() bool {
	return c == CategoryOrdinary || c == CategoryOrdinaryCasual
}

// IsOvertime reports whether the category counts toward overtime hours.
func (c PayCategory) IsOvertime() bool {
	return c == CategoryOvertime150 || c == CategoryOvertime200
}

// IsPenalty reports whether the category counts toward penalty hours.
func (c PayCategory) IsPenalty() bool {
	switch c {
	case CategorySaturday, CategorySaturdayCasual, CategorySunday, CategorySundayCasual:
		return true
	}
	return false
}

// =============================================================================
// PAY LINE / ALLOWANCE
// =============================================================================

// PayLine is a single priced line of a calculation.
// Amount is always hours times rate with no implicit rounding.
type PayLine struct {
	Date      Date            `json:"date"`
	ShiftID   string          `json:"shift_id"`
	Category  PayCategory     `json:"category"`
	Hours     decimal.Decimal `json:"hours"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
	ClauseRef string          `json:"clause_ref"`
}

// AllowancePayment is a capped per-unit payment such as laundry allowance.
type AllowancePayment struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Units       decimal.Decimal `json:"units"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	ClauseRef   string          `json:"clause_ref"`
}

// =============================================================================
// TOTALS
// =============================================================================

// PayTotals aggregates pay lines and allowances by category group.
type PayTotals struct {
	GrossPay        decimal.Decimal `json:"gross_pay"`
	OrdinaryHours   decimal.Decimal `json:"ordinary_hours"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	PenaltyHours    decimal.Decimal `json:"penalty_hours"`
	AllowancesTotal decimal.Decimal `json:"allowances_total"`
}

// =============================================================================
// AUDIT TRACE
// =============================================================================

// Snapshot is a structured key-value capture of the quantities a step's
// formula actually used. Decimal operands are stored as strings.
type Snapshot map[string]any

// AuditStep records one rule application. Step numbers are strictly
// sequential starting at 1 across the whole calculation.
type AuditStep struct {
	StepNumber int      `json:"step_number"`
	RuleID     string   `json:"rule_id"`
	RuleName   string   `json:"rule_name"`
	ClauseRef  string   `json:"clause_ref"`
	Input      Snapshot `json:"input"`
	Output     Snapshot `json:"output"`
	Reasoning  string   `json:"reasoning"`
}

// AuditWarning flags a non-fatal condition noticed during calculation.
type AuditWarning struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// AuditTrace is the ordered record of every decision in a calculation.
type AuditTrace struct {
	Steps      []AuditStep    `json:"steps"`
	Warnings   []AuditWarning `json:"warnings"`
	DurationUS int64          `json:"duration_us"`
}

// =============================================================================
// CALCULATION RESULT
// =============================================================================

// CalculationResult is the complete output of one calculation request.
type CalculationResult struct {
	CalculationID uuid.UUID          `json:"calculation_id"`
	Timestamp     DateTime           `json:"timestamp"`
	EngineVersion string             `json:"engine_version"`
	EmployeeID    string             `json:"employee_id"`
	PayPeriod     PayPeriod          `json:"pay_period"`
	PayLines      []PayLine          `json:"pay_lines"`
	Allowances    []AllowancePayment `json:"allowances"`
	Totals        PayTotals          `json:"totals"`
	AuditTrace    AuditTrace         `json:"audit_trace"`
}
