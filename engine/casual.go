/*
casual.go - Casual loading

PURPOSE:
  Applies the casual loading to the base hourly rate for casual employees.
  Non-casual employees pass through unchanged; either way the decision is
  recorded as an audit step.
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var casualLoadingMultiplier = decimal.NewFromFloat(1.25)

// CasualLoadingMultiplier returns the loading applied to casual ordinary
// hours on top of the base rate.
func CasualLoadingMultiplier() decimal.Decimal { return casualLoadingMultiplier }

// LoadedRateResult carries the (possibly loaded) rate and its audit step.
type LoadedRateResult struct {
	LoadedRate decimal.Decimal
	AuditStep  AuditStep
}

// ApplyCasualLoading multiplies the base rate by the casual loading for
// casual employees and returns it unchanged for everyone else.
func ApplyCasualLoading(baseRate decimal.Decimal, employee Employee, stepNumber int) LoadedRateResult {
	loaded := baseRate
	applied := false
	var reasoning string

	if employee.IsCasual() {
		loaded = baseRate.Mul(casualLoadingMultiplier)
		applied = true
		reasoning = fmt.Sprintf("$%s x %s = $%s", baseRate, casualLoadingMultiplier, loaded)
	} else {
		reasoning = fmt.Sprintf(
			"No casual loading applied - employee is %s (not casual)",
			employee.EmploymentType)
	}

	return LoadedRateResult{
		LoadedRate: loaded,
		AuditStep: AuditStep{
			StepNumber: stepNumber,
			RuleID:     "casual_loading",
			RuleName:   "Casual Loading",
			ClauseRef:  "10.4(b)",
			Input: Snapshot{
				"base_rate":       baseRate,
				"employment_type": employee.EmploymentType,
			},
			Output: Snapshot{
				"loaded_rate":     loaded,
				"loading_applied": applied,
			},
			Reasoning: reasoning,
		},
	}
}
