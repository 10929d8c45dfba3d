/*
ordinary.go - Ordinary hours pay

PURPOSE:
  Prices ordinary (non-penalty, non-overtime) weekday hours at the base
  rate, with casual loading layered on for casual employees. Emits the
  casual loading decision and the pay line generation as audit steps.
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OrdinaryPayResult carries the ordinary pay line and its audit steps.
type OrdinaryPayResult struct {
	PayLine    PayLine
	AuditSteps []AuditStep
}

// CalculateOrdinaryPay prices ordinary hours at the base rate, applying
// casual loading first for casual employees. The base rate is resolved by
// the caller; this function emits the casual loading step followed by the
// pay line step, numbered from startStep.
func CalculateOrdinaryPay(
	date Date,
	shiftID string,
	hours decimal.Decimal,
	baseRate decimal.Decimal,
	employee Employee,
	startStep int,
) OrdinaryPayResult {
	loading := ApplyCasualLoading(baseRate, employee, startStep)
	effectiveRate := loading.LoadedRate

	amount := hours.Mul(effectiveRate)

	category := CategoryOrdinary
	multiplier := decimal.NewFromInt(1)
	if employee.IsCasual() {
		category = CategoryOrdinaryCasual
		multiplier = CasualLoadingMultiplier()
	}

	var qualifier string
	if employee.IsCasual() {
		qualifier = fmt.Sprintf("casual with %sx multiplier", multiplier)
	} else {
		qualifier = fmt.Sprintf("%s employee at base rate", employee.EmploymentType)
	}

	payStep := AuditStep{
		StepNumber: startStep + 1,
		RuleID:     "ordinary_hours_calculation",
		RuleName:   "Ordinary Hours Pay Calculation",
		ClauseRef:  "22.1",
		Input: Snapshot{
			"shift_id":        shiftID,
			"shift_date":      date,
			"hours":           hours,
			"base_rate":       baseRate,
			"effective_rate":  effectiveRate,
			"employment_type": employee.EmploymentType,
			"multiplier":      multiplier,
		},
		Output: Snapshot{
			"category": category,
			"amount":   amount,
		},
		Reasoning: fmt.Sprintf(
			"Calculated ordinary hours pay: %s hours x $%s = $%s (%s)",
			hours, effectiveRate, amount, qualifier),
	}

	return OrdinaryPayResult{
		PayLine: PayLine{
			Date:      date,
			ShiftID:   shiftID,
			Category:  category,
			Hours:     hours,
			Rate:      effectiveRate,
			Amount:    amount,
			ClauseRef: "22.1",
		},
		AuditSteps: []AuditStep{loading.AuditStep, payStep},
	}
}
