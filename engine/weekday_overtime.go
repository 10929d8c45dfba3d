/*
weekday_overtime.go - Tiered weekday overtime

PURPOSE:
  Prices weekday overtime in two tiers: the first two overtime hours at the
  tier 1 multiplier, every hour after that at the tier 2 multiplier.
  Casual multipliers already include the casual loading, so no separate
  loading step applies to overtime.
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// weekdayOvertimeTierThreshold is the number of overtime hours priced at
// tier 1 before tier 2 takes over.
var weekdayOvertimeTierThreshold = decimal.NewFromInt(2)

var oneHundred = decimal.NewFromInt(100)

// WeekdayOvertimeResult carries up to two pay lines (tier 1 and tier 2)
// with a matching audit step per line.
type WeekdayOvertimeResult struct {
	PayLines   []PayLine
	AuditSteps []AuditStep
}

// CalculateWeekdayOvertime prices overtime hours worked on a weekday.
// Zero overtime produces no pay lines and no audit steps.
func CalculateWeekdayOvertime(
	overtimeHours decimal.Decimal,
	baseRate decimal.Decimal,
	employee Employee,
	table *RuleTable,
	date Date,
	shiftID string,
	startStep int,
) WeekdayOvertimeResult {
	var result WeekdayOvertimeResult
	if overtimeHours.Sign() <= 0 {
		return result
	}

	config := table.WeekdayOvertime()
	tier1Multiplier := config.FirstTwoHours.For(employee.EmploymentType)
	tier2Multiplier := config.AfterTwoHours.For(employee.EmploymentType)

	stepNumber := startStep

	tier1Hours := overtimeHours
	if overtimeHours.GreaterThan(weekdayOvertimeTierThreshold) {
		tier1Hours = weekdayOvertimeTierThreshold
	}

	if tier1Hours.Sign() > 0 {
		rate := baseRate.Mul(tier1Multiplier)
		amount := tier1Hours.Mul(rate)
		percent := tier1Multiplier.Mul(oneHundred)

		var reasoning string
		if employee.IsCasual() {
			reasoning = fmt.Sprintf(
				"First %s hours of weekday overtime at %s%% (150%% × 1.25 casual loading): %s hours × $%s = $%s",
				tier1Hours, percent, tier1Hours, rate, amount)
		} else {
			reasoning = fmt.Sprintf(
				"First %s hours of weekday overtime at %s%%: %s hours × $%s = $%s",
				tier1Hours, percent, tier1Hours, rate, amount)
		}

		result.PayLines = append(result.PayLines, PayLine{
			Date:      date,
			ShiftID:   shiftID,
			Category:  CategoryOvertime150,
			Hours:     tier1Hours,
			Rate:      rate,
			Amount:    amount,
			ClauseRef: config.Clause,
		})
		result.AuditSteps = append(result.AuditSteps, AuditStep{
			StepNumber: stepNumber,
			RuleID:     "overtime_tier_1",
			RuleName:   "Weekday Overtime Tier 1",
			ClauseRef:  config.Clause,
			Input: Snapshot{
				"hours":           tier1Hours,
				"base_rate":       baseRate,
				"employment_type": employee.EmploymentType,
			},
			Output: Snapshot{
				"multiplier": tier1Multiplier,
				"rate":       rate,
				"amount":     amount,
			},
			Reasoning: reasoning,
		})
		stepNumber++
	}

	tier2Hours := decimal.Zero
	if overtimeHours.GreaterThan(weekdayOvertimeTierThreshold) {
		tier2Hours = overtimeHours.Sub(weekdayOvertimeTierThreshold)
	}

	if tier2Hours.Sign() > 0 {
		rate := baseRate.Mul(tier2Multiplier)
		amount := tier2Hours.Mul(rate)
		percent := tier2Multiplier.Mul(oneHundred)

		var reasoning string
		if employee.IsCasual() {
			reasoning = fmt.Sprintf(
				"Overtime after first 2 hours at %s%% (200%% × 1.25 casual loading): %s hours × $%s = $%s",
				percent, tier2Hours, rate, amount)
		} else {
			reasoning = fmt.Sprintf(
				"Overtime after first 2 hours at %s%%: %s hours × $%s = $%s",
				percent, tier2Hours, rate, amount)
		}

		result.PayLines = append(result.PayLines, PayLine{
			Date:      date,
			ShiftID:   shiftID,
			Category:  CategoryOvertime200,
			Hours:     tier2Hours,
			Rate:      rate,
			Amount:    amount,
			ClauseRef: config.Clause,
		})
		result.AuditSteps = append(result.AuditSteps, AuditStep{
			StepNumber: stepNumber,
			RuleID:     "overtime_tier_2",
			RuleName:   "Weekday Overtime Tier 2",
			ClauseRef:  config.Clause,
			Input: Snapshot{
				"hours":           tier2Hours,
				"base_rate":       baseRate,
				"employment_type": employee.EmploymentType,
			},
			Output: Snapshot{
				"multiplier": tier2Multiplier,
				"rate":       rate,
				"amount":     amount,
			},
			Reasoning: reasoning,
		})
	}

	return result
}
