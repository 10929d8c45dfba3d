/*
allowance.go - Laundry allowance

PURPOSE:
  Pays the per-shift laundry allowance, capped at a weekly maximum, for
  employees tagged as eligible. Ineligible employees still get an audit
  step recording that the allowance was considered and skipped.
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LaundryAllowanceTag marks an employee as eligible for the laundry
// allowance.
const LaundryAllowanceTag = "laundry_allowance"

const laundryAllowanceClause = "15.2(b)"

// LaundryAllowanceResult carries the allowance payment, nil when the
// employee is not eligible, plus the audit step either way.
type LaundryAllowanceResult struct {
	Allowance *AllowancePayment
	AuditStep AuditStep
}

// CalculateLaundryAllowance pays numShifts units of the per-shift rate,
// capped at the weekly maximum. The cap flag is set only when the uncapped
// amount strictly exceeds the cap.
func CalculateLaundryAllowance(
	employee Employee,
	numShifts int,
	perShiftRate decimal.Decimal,
	weeklyCap decimal.Decimal,
	stepNumber int,
) LaundryAllowanceResult {
	if !employee.HasTag(LaundryAllowanceTag) {
		return LaundryAllowanceResult{
			AuditStep: AuditStep{
				StepNumber: stepNumber,
				RuleID:     "laundry_allowance",
				RuleName:   "Laundry Allowance",
				ClauseRef:  laundryAllowanceClause,
				Input: Snapshot{
					"employee_id":     employee.ID,
					"has_laundry_tag": false,
					"num_shifts":      numShifts,
				},
				Output: Snapshot{
					"eligible": false,
					"amount":   "0.00",
				},
				Reasoning: "Employee does not have 'laundry_allowance' tag - not eligible for laundry allowance",
			},
		}
	}

	units := decimal.NewFromInt(int64(numShifts))
	uncapped := units.Mul(perShiftRate)

	amount := uncapped
	capApplied := false
	if uncapped.GreaterThan(weeklyCap) {
		amount = weeklyCap
		capApplied = true
	}

	var reasoning string
	if capApplied {
		reasoning = fmt.Sprintf(
			"%d shifts × $%s = $%s (capped at weekly maximum $%s)",
			numShifts, perShiftRate, amount, weeklyCap)
	} else {
		reasoning = fmt.Sprintf(
			"%d shifts × $%s = $%s",
			numShifts, perShiftRate, amount)
	}

	return LaundryAllowanceResult{
		Allowance: &AllowancePayment{
			Type:        "laundry",
			Description: "Laundry Allowance",
			Units:       units,
			Rate:        perShiftRate,
			Amount:      amount,
			ClauseRef:   laundryAllowanceClause,
		},
		AuditStep: AuditStep{
			StepNumber: stepNumber,
			RuleID:     "laundry_allowance",
			RuleName:   "Laundry Allowance",
			ClauseRef:  laundryAllowanceClause,
			Input: Snapshot{
				"employee_id":     employee.ID,
				"has_laundry_tag": true,
				"num_shifts":      numShifts,
				"per_shift_rate":  perShiftRate,
				"weekly_cap":      weeklyCap,
			},
			Output: Snapshot{
				"eligible":        true,
				"units":           units,
				"uncapped_amount": uncapped,
				"amount":          amount,
				"cap_applied":     capApplied,
			},
			Reasoning: reasoning,
		},
	}
}
