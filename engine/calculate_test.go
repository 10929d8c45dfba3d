package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/award-engine/engine"
)

// =============================================================================
// SINGLE SHIFT SCENARIOS
// =============================================================================

func TestCalculate_FullTime8HourWeekday(t *testing.T) {
	// GIVEN: A full-time employee, one 8h Monday shift
	table := newTestTable()
	employee := testEmployee(engine.FullTime)
	shifts := []engine.Shift{testShift("shift_001", "2026-01-12", "09:00:00", "17:00:00")}

	// WHEN: Running the calculation
	result, err := engine.Calculate(employee, weekOf2026Jan12(), shifts, table)

	// THEN: One ordinary line, 8 × $28.54 = $228.32
	require.NoError(t, err)
	require.Len(t, result.PayLines, 1)
	assert.Equal(t, engine.CategoryOrdinary, result.PayLines[0].Category)
	assert.True(t, result.PayLines[0].Amount.Equal(dec("228.32")))

	assert.True(t, result.Totals.GrossPay.Equal(dec("228.32")))
	assert.True(t, result.Totals.OrdinaryHours.Equal(dec("8")))
	assert.True(t, result.Totals.OvertimeHours.IsZero())
	assert.True(t, result.Totals.PenaltyHours.IsZero())

	assert.Equal(t, "emp_001", result.EmployeeID)
	assert.Equal(t, engine.EngineVersion, result.EngineVersion)
}

func TestCalculate_FullTime8HourSaturday(t *testing.T) {
	table := newTestTable()
	employee := testEmployee(engine.FullTime)
	shifts := []engine.Shift{testShift("shift_001", "2026-01-17", "09:00:00", "17:00:00")}

	result, err := engine.Calculate(employee, weekOf2026Jan12(), shifts, table)

	// 8 × $28.54 × 1.50 = $342.48
	require.NoError(t, err)
	require.Len(t, result.PayLines, 1)
	assert.Equal(t, engine.CategorySaturday, result.PayLines[0].Category)
	assert.True(t, result.PayLines[0].Amount.Equal(dec("342.48")))
	assert.True(t, result.Totals.PenaltyHours.Equal(dec("8")))
}

func TestCalculate_Casual8HourSunday(t *testing.T) {
	table := newTestTable()
	employee := testEmployee(engine.Casual)
	shifts := []engine.Shift{testShift("shift_001", "2026-01-18", "09:00:00", "17:00:00")}

	result, err := engine.Calculate(employee, weekOf2026Jan12(), shifts, table)

	// Casual Sunday is flat 200%: 8 × $28.54 × 2.00 = $456.64
	require.NoError(t, err)
	require.Len(t, result.PayLines, 1)
	assert.Equal(t, engine.CategorySundayCasual, result.PayLines[0].Category)
	assert.True(t, result.PayLines[0].Amount.Equal(dec("456.64")))
}

func TestCalculate_12HourWeekday_OrdinaryPlusTieredOvertime(t *testing.T) {
	// GIVEN: A 12h Monday shift, full-time
	table := newTestTable()
	employee := testEmployee(engine.FullTime)
	shifts := []engine.Shift{testShift("shift_001", "2026-01-12", "08:00:00", "20:00:00")}

	result, err := engine.Calculate(employee, weekOf2026Jan12(), shifts, table)

	// THEN: 8h ordinary + 2h at 150% + 2h at 200%
	require.NoError(t, err)
	require.Len(t, result.PayLines, 3)

	assert.Equal(t, engine.CategoryOrdinary, result.PayLines[0].Category)
	assert.True(t, result.PayLines[0].Amount.Equal(dec("228.32")))
	assert.Equal(t, engine.CategoryOvertime150, result.PayLines[1].Category)
	assert.True(t, result.PayLines[1].Amount.Equal(dec("85.62")))
	assert.Equal(t, engine.CategoryOvertime200, result.PayLines[2].Category)
	assert.True(t, result.PayLines[2].Amount.Equal(dec("114.16")))

	assert.True(t, result.Totals.GrossPay.Equal(dec("428.1")), "got %s", result.Totals.GrossPay)
	assert.True(t, result.Totals.OrdinaryHours.Equal(dec("8")))
	assert.True(t, result.Totals.OvertimeHours.Equal(dec("4")))
}

// =============================================================================
// OVERNIGHT SHIFTS
// =============================================================================

func TestCalculate_OvernightSaturdayIntoSunday(t *testing.T) {
	// GIVEN: Saturday 22:00 to Sunday 06:00, full-time
	table := newTestTable()
	employee := testEmployee(engine.FullTime)
	shifts := []engine.Shift{overnightShift("shift_001", "2026-01-17", "22:00:00", "2026-01-18", "06:00:00")}

	result, err := engine.Calculate(employee, weekOf2026Jan12(), shifts, table)

	// THEN: Saturday 2h at 150% then Sunday 6h at 175%
	require.NoError(t, err)
	require.Len(t, result.PayLines, 2)
	assert.Equal(t, engine.CategorySaturday, result.PayLines[0].Category)
	assert.True(t, result.PayLines[0].Amount.Equal(dec("85.62")))
	assert.Equal(t, engine.CategorySunday, result.PayLines[1].Category)
	assert.True(t, result.PayLines[1].Amount.Equal(dec("299.67")))
	assert.True(t, result.Totals.GrossPay.Equal(dec("385.29")))
}

func TestCalculate_OvernightOvertime_PricedByShiftStartDay(t *testing.T) {
	// GIVEN: A 10h Saturday 20:00 to Sunday 06:00 shift, full-time.
	// The 2 overtime hours chronologically fall on Sunday, but overtime is
	// priced by the shift's start day type.
	table := newTestTable()
	employee := testEmployee(engine.FullTime)
	shifts := []engine.Shift{overnightShift("shift_001", "2026-01-17", "20:00:00", "2026-01-18", "06:00:00")}

	result, err := engine.Calculate(employee, weekOf2026Jan12(), shifts, table)

	require.NoError(t, err)
	require.Len(t, result.PayLines, 3)

	// 4h Saturday penalty: 4 × $42.81 = $171.24
	assert.Equal(t, engine.CategorySaturday, result.PayLines[0].Category)
	assert.True(t, result.PayLines[0].Amount.Equal(dec("171.24")))

	// 4h Sunday penalty: 4 × $49.945 = $199.78
	assert.Equal(t, engine.CategorySunday, result.PayLines[1].Category)
	assert.True(t, result.PayLines[1].Amount.Equal(dec("199.78")), "got %s", result.PayLines[1].Amount)

	// 2h overtime at the Saturday weekend rate: 2 × $57.08 = $114.16
	assert.Equal(t, engine.CategoryOvertime200, result.PayLines[2].Category)
	assert.True(t, result.PayLines[2].Amount.Equal(dec("114.16")))

	overtimeStep := findStep(t, result, "weekend_overtime")
	assert.Equal(t, "Saturday Overtime", overtimeStep.RuleName)
}

// =============================================================================
// ALLOWANCES
// =============================================================================

func TestCalculate_LaundryAllowance_CappedOverFullWeek(t *testing.T) {
	// GIVEN: A tagged full-time employee working Monday to Friday
	table := newTestTable()
	employee := testEmployee(engine.FullTime, engine.LaundryAllowanceTag)
	days := []string{"2026-01-12", "2026-01-13", "2026-01-14", "2026-01-15", "2026-01-16"}
	var shifts []engine.Shift
	for i, d := range days {
		shifts = append(shifts, testShift(fmt.Sprintf("shift_%03d", i+1), d, "09:00:00", "17:00:00"))
	}

	result, err := engine.Calculate(employee, weekOf2026Jan12(), shifts, table)

	// THEN: 5 × $0.32 = $1.60 capped to $1.49
	require.NoError(t, err)
	require.Len(t, result.Allowances, 1)
	assert.True(t, result.Allowances[0].Amount.Equal(dec("1.49")))
	assert.True(t, result.Totals.AllowancesTotal.Equal(dec("1.49")))

	// Gross = 5 × $228.32 + $1.49
	assert.True(t, result.Totals.GrossPay.Equal(dec("1143.09")), "got %s", result.Totals.GrossPay)
}

func TestCalculate_NoAllowanceWithoutTag(t *testing.T) {
	table := newTestTable()
	employee := testEmployee(engine.FullTime)
	shifts := []engine.Shift{testShift("shift_001", "2026-01-12", "09:00:00", "17:00:00")}

	result, err := engine.Calculate(employee, weekOf2026Jan12(), shifts, table)

	require.NoError(t, err)
	assert.Empty(t, result.Allowances)
	assert.True(t, result.Totals.AllowancesTotal.IsZero())
}

// =============================================================================
// AUDIT TRAIL
// =============================================================================

func TestCalculate_AuditStepsSequentialFromOne(t *testing.T) {
	table := newTestTable()
	employee := testEmployee(engine.Casual, engine.LaundryAllowanceTag)
	shifts := []engine.Shift{
		testShift("shift_001", "2026-01-12", "08:00:00", "20:00:00"),
		overnightShift("shift_002", "2026-01-17", "22:00:00", "2026-01-18", "06:00:00"),
	}

	result, err := engine.Calculate(employee, weekOf2026Jan12(), shifts, table)

	require.NoError(t, err)
	require.NotEmpty(t, result.AuditTrace.Steps)
	for i, step := range result.AuditTrace.Steps {
		assert.Equal(t, i+1, step.StepNumber, "step %d out of sequence (%s)", i, step.RuleID)
	}
	assert.Equal(t, "base_rate_lookup", result.AuditTrace.Steps[0].RuleID)
	last := result.AuditTrace.Steps[len(result.AuditTrace.Steps)-1]
	assert.Equal(t, "laundry_allowance", last.RuleID)
}

func TestCalculate_Deterministic(t *testing.T) {
	// Identical inputs must yield identical pay lines, totals, and audit
	// steps. Only the id, timestamp, and duration may differ.
	table := newTestTable()
	employee := testEmployee(engine.Casual, engine.LaundryAllowanceTag)
	shifts := []engine.Shift{
		testShift("shift_001", "2026-01-12", "08:00:00", "20:00:00"),
		overnightShift("shift_002", "2026-01-17", "22:00:00", "2026-01-18", "06:00:00"),
	}
	period := weekOf2026Jan12()

	first, err := engine.Calculate(employee, period, shifts, table)
	require.NoError(t, err)
	second, err := engine.Calculate(employee, period, shifts, table)
	require.NoError(t, err)

	assert.Equal(t, first.PayLines, second.PayLines)
	assert.Equal(t, first.Allowances, second.Allowances)
	assert.Equal(t, first.Totals, second.Totals)
	assert.Equal(t, first.AuditTrace.Steps, second.AuditTrace.Steps)
	assert.NotEqual(t, first.CalculationID, second.CalculationID)
}

// =============================================================================
// EDGE CASES AND ERRORS
// =============================================================================

func TestCalculate_NoShifts(t *testing.T) {
	table := newTestTable()
	employee := testEmployee(engine.FullTime)

	result, err := engine.Calculate(employee, weekOf2026Jan12(), nil, table)

	require.NoError(t, err)
	assert.Empty(t, result.PayLines)
	assert.True(t, result.Totals.GrossPay.IsZero())
	// Base rate resolution and the allowance decision are still audited.
	require.Len(t, result.AuditTrace.Steps, 2)
	assert.Equal(t, "base_rate_lookup", result.AuditTrace.Steps[0].RuleID)
	assert.Equal(t, "laundry_allowance", result.AuditTrace.Steps[1].RuleID)
}

func TestCalculate_UnknownClassification_FailsBeforeAnyPayLine(t *testing.T) {
	table := newTestTable()
	employee := testEmployee(engine.FullTime)
	employee.ClassificationCode = "nonexistent"
	shifts := []engine.Shift{testShift("shift_001", "2026-01-12", "09:00:00", "17:00:00")}

	result, err := engine.Calculate(employee, weekOf2026Jan12(), shifts, table)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, engine.ErrClassificationNotFound)
}

func TestCalculate_EmployeeOverrideRate(t *testing.T) {
	table := newTestTable()
	employee := testEmployee(engine.FullTime)
	override := dec("30.00")
	employee.BaseHourlyRate = &override
	shifts := []engine.Shift{testShift("shift_001", "2026-01-12", "09:00:00", "17:00:00")}

	result, err := engine.Calculate(employee, weekOf2026Jan12(), shifts, table)

	require.NoError(t, err)
	require.Len(t, result.PayLines, 1)
	assert.True(t, result.PayLines[0].Amount.Equal(dec("240")), "got %s", result.PayLines[0].Amount)
}

func TestCalculate_ShiftWithUnpaidBreak(t *testing.T) {
	// GIVEN: A 9h span with a 1h unpaid break
	table := newTestTable()
	employee := testEmployee(engine.FullTime)
	shift := testShift("shift_001", "2026-01-12", "08:00:00", "17:00:00")
	shift.Breaks = []engine.Break{{
		StartTime: datetime("2026-01-12T12:00:00"),
		EndTime:   datetime("2026-01-12T13:00:00"),
		IsPaid:    false,
	}}

	result, err := engine.Calculate(employee, weekOf2026Jan12(), []engine.Shift{shift}, table)

	// THEN: 8 worked hours, no overtime
	require.NoError(t, err)
	assert.True(t, result.Totals.OrdinaryHours.Equal(dec("8")))
	assert.True(t, result.Totals.OvertimeHours.IsZero())
}

func findStep(t *testing.T, result *engine.CalculationResult, ruleID string) engine.AuditStep {
	t.Helper()
	for _, step := range result.AuditTrace.Steps {
		if step.RuleID == ruleID {
			return step
		}
	}
	t.Fatalf("no audit step with rule id %q", ruleID)
	return engine.AuditStep{}
}
