/*
calculate.go - Calculation orchestrator

PURPOSE:
  Runs a full pay calculation for one employee over one pay period: resolve
  the base rate once, price every shift (ordinary, penalty, overtime),
  apply allowances, and assemble totals with a sequentially numbered audit
  trail.

KEY CONCEPTS:
  - Ordinary Routing: Within a shift, ordinary hours are consumed segment
    by segment in chronological order and priced by each segment's own day
    type.
  - Overtime Routing: The shift's overtime remainder is priced once, after
    the segment walk, by the day type of the shift's start instant. An
    overnight Saturday shift therefore earns Saturday overtime even when
    the overtime hours land on Sunday.
  - Fail-Fast: Any resolution error aborts before a single pay line is
    produced. There are no partial results.

DESIGN PRINCIPLES:
  - Deterministic: identical inputs produce identical pay lines, totals,
    and audit text. The only nondeterministic fields are the calculation
    id, timestamp, and duration measurement.
  - Pure with respect to the rule table: the table is read, never written,
    so calculations can run concurrently against a shared table.
*/
package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EngineVersion is stamped into every calculation result.
const EngineVersion = "1.0.0"

// Calculate runs the full pay pipeline for the employee's shifts within
// the pay period. Shifts are processed in input order.
func Calculate(employee Employee, period PayPeriod, shifts []Shift, table *RuleTable) (*CalculationResult, error) {
	started := time.Now()

	var (
		payLines   []PayLine
		auditSteps []AuditStep
		warnings   []AuditWarning
	)
	stepNumber := 1

	// Rate lookups key off the first shift's date, or the period start
	// when there are no shifts.
	effectiveDate := period.StartDate
	if len(shifts) > 0 {
		effectiveDate = shifts[0].Date
	}

	baseRateResult, err := ResolveBaseRate(employee, effectiveDate, table, stepNumber)
	if err != nil {
		return nil, err
	}
	baseRate := baseRateResult.Rate
	auditSteps = append(auditSteps, baseRateResult.AuditStep)
	stepNumber++

	for _, shift := range shifts {
		segments := SegmentByDay(shift)
		workedHours := shift.WorkedHours()

		detection := DetectDailyOvertime(workedHours, table.DailyOvertimeThreshold(), stepNumber)
		auditSteps = append(auditSteps, detection.AuditStep)
		stepNumber++

		ordinaryRemaining := detection.OrdinaryHours

		for _, segment := range segments {
			segmentOrdinary := segment.Hours
			if ordinaryRemaining.LessThan(segment.Hours) {
				segmentOrdinary = ordinaryRemaining
			}
			ordinaryRemaining = ordinaryRemaining.Sub(segmentOrdinary)

			if segmentOrdinary.Sign() <= 0 {
				continue
			}

			switch segment.DayType {
			case Saturday, Sunday:
				priced := segment
				priced.Hours = segmentOrdinary
				var result PenaltyPayResult
				if segment.DayType == Saturday {
					result = CalculateSaturdayPay(priced, shift.ID, employee, baseRate, table, stepNumber)
				} else {
					result = CalculateSundayPay(priced, shift.ID, employee, baseRate, table, stepNumber)
				}
				payLines = append(payLines, result.PayLine)
				auditSteps = append(auditSteps, result.AuditStep)
				stepNumber++
			default:
				result := CalculateOrdinaryPay(
					segment.StartTime.DateOf(), shift.ID,
					segmentOrdinary, baseRate, employee, stepNumber)
				payLines = append(payLines, result.PayLine)
				auditSteps = append(auditSteps, result.AuditSteps...)
				stepNumber += len(result.AuditSteps)
			}
		}

		if detection.OvertimeHours.Sign() > 0 {
			// Overtime is priced by the day type of the shift's start,
			// not the segment the overtime hours fall in.
			shiftDayType := DayTypeOf(shift.StartTime)

			switch shiftDayType {
			case Saturday, Sunday:
				result := CalculateWeekendOvertime(
					detection.OvertimeHours, baseRate, employee, table,
					shiftDayType, shift.Date, shift.ID, stepNumber)
				if result.PayLine != nil {
					payLines = append(payLines, *result.PayLine)
				}
				if result.AuditStep != nil {
					auditSteps = append(auditSteps, *result.AuditStep)
					stepNumber++
				}
			default:
				result := CalculateWeekdayOvertime(
					detection.OvertimeHours, baseRate, employee, table,
					shift.Date, shift.ID, stepNumber)
				payLines = append(payLines, result.PayLines...)
				auditSteps = append(auditSteps, result.AuditSteps...)
				stepNumber += len(result.AuditSteps)
			}
		}
	}

	allowanceRates, err := table.AllowanceRates(effectiveDate)
	if err != nil {
		return nil, err
	}
	laundry := CalculateLaundryAllowance(
		employee, len(shifts),
		allowanceRates.LaundryPerShift, allowanceRates.LaundryPerWeek,
		stepNumber)
	auditSteps = append(auditSteps, laundry.AuditStep)

	var allowances []AllowancePayment
	if laundry.Allowance != nil {
		allowances = append(allowances, *laundry.Allowance)
	}

	totals := computeTotals(payLines, allowances)

	return &CalculationResult{
		CalculationID: uuid.New(),
		Timestamp:     DateTime{Time: time.Now().UTC()},
		EngineVersion: EngineVersion,
		EmployeeID:    employee.ID,
		PayPeriod:     period,
		PayLines:      payLines,
		Allowances:    allowances,
		Totals:        totals,
		AuditTrace: AuditTrace{
			Steps:      auditSteps,
			Warnings:   warnings,
			DurationUS: time.Since(started).Microseconds(),
		},
	}, nil
}

func computeTotals(payLines []PayLine, allowances []AllowancePayment) PayTotals {
	grossPay := decimal.Zero
	ordinaryHours := decimal.Zero
	overtimeHours := decimal.Zero
	penaltyHours := decimal.Zero
	allowancesTotal := decimal.Zero

	for _, pl := range payLines {
		grossPay = grossPay.Add(pl.Amount)
		switch {
		case pl.Category.IsOrdinary():
			ordinaryHours = ordinaryHours.Add(pl.Hours)
		case pl.Category.IsOvertime():
			overtimeHours = overtimeHours.Add(pl.Hours)
		case pl.Category.IsPenalty():
			penaltyHours = penaltyHours.Add(pl.Hours)
		}
	}
	for _, a := range allowances {
		allowancesTotal = allowancesTotal.Add(a.Amount)
	}
	grossPay = grossPay.Add(allowancesTotal)

	return PayTotals{
		GrossPay:        grossPay,
		OrdinaryHours:   ordinaryHours,
		OvertimeHours:   overtimeHours,
		PenaltyHours:    penaltyHours,
		AllowancesTotal: allowancesTotal,
	}
}
