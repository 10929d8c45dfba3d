/*
rate.go - Base hourly rate resolution

PURPOSE:
  Resolves an employee's base hourly rate exactly once per calculation: an
  explicit employee override wins, otherwise the rate is an effective-dated
  lookup against the rule table by classification code.
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BaseRateResult carries the resolved rate and the audit step recording how
// it was resolved.
type BaseRateResult struct {
	Rate      decimal.Decimal
	AuditStep AuditStep
}

// ResolveBaseRate resolves the employee's base hourly rate as of
// effectiveDate. An employee override bypasses classification lookup
// entirely; otherwise the classification must exist in the table and carry
// a rate effective on or before the date.
func ResolveBaseRate(employee Employee, effectiveDate Date, table *RuleTable, stepNumber int) (BaseRateResult, error) {
	if employee.BaseHourlyRate != nil {
		rate := *employee.BaseHourlyRate
		return BaseRateResult{
			Rate: rate,
			AuditStep: AuditStep{
				StepNumber: stepNumber,
				RuleID:     "base_rate_lookup",
				RuleName:   "Base Rate Lookup",
				ClauseRef:  "14.2",
				Input: Snapshot{
					"classification": employee.ClassificationCode,
					"source":         "employee_override",
				},
				Output: Snapshot{
					"base_hourly_rate": rate,
				},
				Reasoning: fmt.Sprintf(
					"Using employee override rate $%s instead of classification lookup", rate),
			},
		}, nil
	}

	if !table.HasClassification(employee.ClassificationCode) {
		return BaseRateResult{}, &ClassificationNotFoundError{Code: employee.ClassificationCode}
	}

	rate, err := table.HourlyRate(employee.ClassificationCode, effectiveDate)
	if err != nil {
		return BaseRateResult{}, err
	}
	rateDate, _ := table.rateEffectiveDate(effectiveDate)

	return BaseRateResult{
		Rate: rate,
		AuditStep: AuditStep{
			StepNumber: stepNumber,
			RuleID:     "base_rate_lookup",
			RuleName:   "Base Rate Lookup",
			ClauseRef:  "14.2",
			Input: Snapshot{
				"classification": employee.ClassificationCode,
				"source":         "config",
				"date":           effectiveDate,
			},
			Output: Snapshot{
				"base_hourly_rate":    rate,
				"rate_effective_date": rateDate,
			},
			Reasoning: fmt.Sprintf(
				"Looked up rate for classification '%s' effective %s: $%s",
				employee.ClassificationCode, rateDate, rate),
		},
	}, nil
}
