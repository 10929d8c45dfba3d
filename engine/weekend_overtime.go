/*
weekend_overtime.go - Flat weekend overtime

PURPOSE:
  Prices overtime worked on a Saturday or Sunday shift at the flat weekend
  overtime multiplier. There is no tiering on weekends; all overtime hours
  go into a single overtime200 pay line.
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WeekendOvertimeResult carries the weekend overtime pay line and audit
// step, both nil when no overtime was worked.
type WeekendOvertimeResult struct {
	PayLine   *PayLine
	AuditStep *AuditStep
}

// CalculateWeekendOvertime prices overtime on a weekend shift at the flat
// multiplier for the day and employment type. A Weekday day type returns an
// empty result; weekday overtime is tiered and handled elsewhere.
func CalculateWeekendOvertime(
	overtimeHours decimal.Decimal,
	baseRate decimal.Decimal,
	employee Employee,
	table *RuleTable,
	day DayType,
	date Date,
	shiftID string,
	stepNumber int,
) WeekendOvertimeResult {
	if overtimeHours.Sign() <= 0 {
		return WeekendOvertimeResult{}
	}

	config := table.WeekendOvertime()
	var multiplier decimal.Decimal
	switch day {
	case Saturday:
		multiplier = config.Saturday.For(employee.EmploymentType)
	case Sunday:
		multiplier = config.Sunday.For(employee.EmploymentType)
	default:
		return WeekendOvertimeResult{}
	}

	rate := baseRate.Mul(multiplier)
	amount := overtimeHours.Mul(rate)
	percent := multiplier.Mul(oneHundred)

	var reasoning string
	if employee.IsCasual() {
		reasoning = fmt.Sprintf(
			"%s overtime: %s hours at %s%% (200%% × 1.25 casual loading): %s hours × $%s = $%s",
			day.Display(), overtimeHours, percent, overtimeHours, rate, amount)
	} else {
		reasoning = fmt.Sprintf(
			"%s overtime: %s hours at %s%%: %s hours × $%s = $%s",
			day.Display(), overtimeHours, percent, overtimeHours, rate, amount)
	}

	payLine := PayLine{
		Date:      date,
		ShiftID:   shiftID,
		Category:  CategoryOvertime200,
		Hours:     overtimeHours,
		Rate:      rate,
		Amount:    amount,
		ClauseRef: config.Clause,
	}
	auditStep := AuditStep{
		StepNumber: stepNumber,
		RuleID:     "weekend_overtime",
		RuleName:   day.Display() + " Overtime",
		ClauseRef:  config.Clause,
		Input: Snapshot{
			"hours":           overtimeHours,
			"base_rate":       baseRate,
			"employment_type": employee.EmploymentType,
			"day_type":        day.Display(),
		},
		Output: Snapshot{
			"multiplier": multiplier,
			"rate":       rate,
			"amount":     amount,
		},
		Reasoning: reasoning,
	}

	return WeekendOvertimeResult{PayLine: &payLine, AuditStep: &auditStep}
}
