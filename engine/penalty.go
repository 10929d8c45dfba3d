/*
penalty.go - Weekend penalty rates

PURPOSE:
  Prices Saturday and Sunday segments at the weekend penalty multiplier for
  the employee's employment type. Casual weekend work uses the casual
  penalty rate instead of stacking casual loading on the ordinary penalty.
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PenaltyPayResult carries one weekend penalty pay line and its audit step.
type PenaltyPayResult struct {
	PayLine   PayLine
	AuditStep AuditStep
}

// CalculateSaturdayPay prices a Saturday segment at the Saturday penalty
// rate for the employee's employment type.
func CalculateSaturdayPay(segment ShiftSegment, shiftID string, employee Employee, baseRate decimal.Decimal, table *RuleTable, stepNumber int) PenaltyPayResult {
	return weekendPenaltyPay(segment, shiftID, employee, baseRate, table, Saturday, stepNumber)
}

// CalculateSundayPay prices a Sunday segment at the Sunday penalty rate
// for the employee's employment type.
func CalculateSundayPay(segment ShiftSegment, shiftID string, employee Employee, baseRate decimal.Decimal, table *RuleTable, stepNumber int) PenaltyPayResult {
	return weekendPenaltyPay(segment, shiftID, employee, baseRate, table, Sunday, stepNumber)
}

func weekendPenaltyPay(segment ShiftSegment, shiftID string, employee Employee, baseRate decimal.Decimal, table *RuleTable, day DayType, stepNumber int) PenaltyPayResult {
	multiplier, _, _ := table.Penalty(day, employee.EmploymentType)

	var (
		ruleID    string
		ruleName  string
		category  PayCategory
		clauseRef string
	)
	switch day {
	case Saturday:
		ruleID = "saturday_penalty"
		ruleName = "Saturday Penalty Rate"
		if employee.IsCasual() {
			category = CategorySaturdayCasual
			clauseRef = "23.2(a)"
		} else {
			category = CategorySaturday
			clauseRef = "23.1"
		}
	default:
		ruleID = "sunday_penalty"
		ruleName = "Sunday Penalty Rate"
		if employee.IsCasual() {
			category = CategorySundayCasual
			clauseRef = "23.2(b)"
		} else {
			category = CategorySunday
			clauseRef = "23.1"
		}
	}

	effectiveRate := baseRate.Mul(multiplier)
	amount := segment.Hours.Mul(effectiveRate)

	return PenaltyPayResult{
		PayLine: PayLine{
			Date:      segment.StartTime.DateOf(),
			ShiftID:   shiftID,
			Category:  category,
			Hours:     segment.Hours,
			Rate:      effectiveRate,
			Amount:    amount,
			ClauseRef: clauseRef,
		},
		AuditStep: AuditStep{
			StepNumber: stepNumber,
			RuleID:     ruleID,
			RuleName:   ruleName,
			ClauseRef:  clauseRef,
			Input: Snapshot{
				"hours":           segment.Hours,
				"base_rate":       baseRate,
				"employment_type": employee.EmploymentType,
				"day_type":        day.Display(),
			},
			Output: Snapshot{
				"multiplier":     multiplier,
				"effective_rate": effectiveRate,
				"amount":         amount,
				"category":       category,
			},
			Reasoning: fmt.Sprintf(
				"%s penalty: %s hours × $%s × %s = $%s",
				day.Display(), segment.Hours, baseRate, multiplier, amount),
		},
	}
}
