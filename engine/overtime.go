/*
overtime.go - Daily overtime detection

PURPOSE:
  Splits a shift's worked hours into ordinary and overtime portions against
  the daily ordinary-hours threshold, and records the decision as an audit
  step. Hours at or under the threshold are ordinary; every hour past it is
  overtime.
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultDailyOvertimeThreshold is the fallback ordinary-hours threshold
// per shift when an award pack does not specify one.
var DefaultDailyOvertimeThreshold = decimal.NewFromInt(8)

// OvertimeSplit is the outcome of daily overtime detection for one shift.
type OvertimeSplit struct {
	OrdinaryHours decimal.Decimal
	OvertimeHours decimal.Decimal
	AuditStep     AuditStep
}

// DetectDailyOvertime splits worked hours at the threshold. A shift landing
// exactly on the threshold triggers no overtime.
func DetectDailyOvertime(workedHours, threshold decimal.Decimal, stepNumber int) OvertimeSplit {
	ordinary := workedHours
	overtime := decimal.Zero

	var reasoning string
	switch workedHours.Cmp(threshold) {
	case 1:
		overtime = workedHours.Sub(threshold)
		ordinary = threshold
		reasoning = fmt.Sprintf(
			"%s hours worked exceeds %s hour threshold by %s hours, triggering overtime",
			workedHours, threshold, overtime)
	case 0:
		reasoning = fmt.Sprintf(
			"%s hours worked equals %s hour threshold, no overtime triggered",
			workedHours, threshold)
	default:
		reasoning = fmt.Sprintf(
			"%s hours worked is under %s hour threshold, no overtime triggered",
			workedHours, threshold)
	}

	return OvertimeSplit{
		OrdinaryHours: ordinary,
		OvertimeHours: overtime,
		AuditStep: AuditStep{
			StepNumber: stepNumber,
			RuleID:     "daily_overtime_detection",
			RuleName:   "Daily Overtime Detection",
			ClauseRef:  "22.1(c), 25.1",
			Input: Snapshot{
				"worked_hours":    workedHours,
				"threshold_hours": threshold,
			},
			Output: Snapshot{
				"ordinary_hours": ordinary,
				"overtime_hours": overtime,
			},
			Reasoning: reasoning,
		},
	}
}
