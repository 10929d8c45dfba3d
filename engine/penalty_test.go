package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/award-engine/engine"
)

func saturdaySegment(hours string) engine.ShiftSegment {
	return engine.ShiftSegment{
		StartTime: datetime("2026-01-17T09:00:00"),
		EndTime:   datetime("2026-01-17T17:00:00"),
		DayType:   engine.Saturday,
		Hours:     dec(hours),
	}
}

func sundaySegment(hours string) engine.ShiftSegment {
	return engine.ShiftSegment{
		StartTime: datetime("2026-01-18T09:00:00"),
		EndTime:   datetime("2026-01-18T17:00:00"),
		DayType:   engine.Sunday,
		Hours:     dec(hours),
	}
}

// =============================================================================
// SATURDAY
// =============================================================================

func TestCalculateSaturdayPay_FullTime(t *testing.T) {
	// GIVEN: 8 Saturday hours for a full-time employee at $28.54
	table := newTestTable()
	employee := testEmployee(engine.FullTime)

	// WHEN: Pricing the segment
	result := engine.CalculateSaturdayPay(saturdaySegment("8"), "shift_001", employee, dec("28.54"), table, 4)

	// THEN: 8 × $28.54 × 1.50 = $342.48 under clause 23.1
	assert.Equal(t, engine.CategorySaturday, result.PayLine.Category)
	assert.True(t, result.PayLine.Rate.Equal(dec("42.81")))
	assert.True(t, result.PayLine.Amount.Equal(dec("342.48")))
	assert.Equal(t, "23.1", result.PayLine.ClauseRef)
	assert.Equal(t, "shift_001", result.PayLine.ShiftID)
	assert.Equal(t, date("2026-01-17"), result.PayLine.Date)

	assert.Equal(t, 4, result.AuditStep.StepNumber)
	assert.Equal(t, "saturday_penalty", result.AuditStep.RuleID)
	assert.Equal(t, "Saturday Penalty Rate", result.AuditStep.RuleName)
	assert.Equal(t, "Saturday penalty: 8 hours × $28.54 × 1.5 = $342.48", result.AuditStep.Reasoning)
}

func TestCalculateSaturdayPay_Casual_UsesCasualPenaltyNotStackedLoading(t *testing.T) {
	// Casual Saturday work is 175% of base, not base × 1.25 × 1.50.
	table := newTestTable()
	employee := testEmployee(engine.Casual)

	result := engine.CalculateSaturdayPay(saturdaySegment("8"), "shift_001", employee, dec("28.54"), table, 1)

	assert.Equal(t, engine.CategorySaturdayCasual, result.PayLine.Category)
	assert.True(t, result.PayLine.Rate.Equal(dec("49.945")), "got %s", result.PayLine.Rate)
	assert.True(t, result.PayLine.Amount.Equal(dec("399.56")), "got %s", result.PayLine.Amount)
	assert.Equal(t, "23.2(a)", result.PayLine.ClauseRef)
	assert.Equal(t, "23.2(a)", result.AuditStep.ClauseRef)
}

// =============================================================================
// SUNDAY
// =============================================================================

func TestCalculateSundayPay_FullTime(t *testing.T) {
	table := newTestTable()
	employee := testEmployee(engine.FullTime)

	result := engine.CalculateSundayPay(sundaySegment("8"), "shift_001", employee, dec("28.54"), table, 1)

	// 8 × $28.54 × 1.75 = $399.56
	assert.Equal(t, engine.CategorySunday, result.PayLine.Category)
	assert.True(t, result.PayLine.Amount.Equal(dec("399.56")))
	assert.Equal(t, "23.1", result.PayLine.ClauseRef)
	assert.Equal(t, "sunday_penalty", result.AuditStep.RuleID)
	assert.Equal(t, "Sunday Penalty Rate", result.AuditStep.RuleName)
	assert.Equal(t, "Sunday penalty: 8 hours × $28.54 × 1.75 = $399.56", result.AuditStep.Reasoning)
}

func TestCalculateSundayPay_Casual(t *testing.T) {
	table := newTestTable()
	employee := testEmployee(engine.Casual)

	result := engine.CalculateSundayPay(sundaySegment("8"), "shift_001", employee, dec("28.54"), table, 1)

	// 8 × $28.54 × 2.00 = $456.64
	assert.Equal(t, engine.CategorySundayCasual, result.PayLine.Category)
	assert.True(t, result.PayLine.Amount.Equal(dec("456.64")))
	assert.Equal(t, "23.2(b)", result.PayLine.ClauseRef)
}

func TestCalculateSundayPay_PartTime_SameAsFullTime(t *testing.T) {
	table := newTestTable()

	ft := engine.CalculateSundayPay(sundaySegment("4"), "s", testEmployee(engine.FullTime), dec("28.54"), table, 1)
	pt := engine.CalculateSundayPay(sundaySegment("4"), "s", testEmployee(engine.PartTime), dec("28.54"), table, 1)

	assert.True(t, ft.PayLine.Amount.Equal(pt.PayLine.Amount))
	assert.Equal(t, ft.PayLine.Category, pt.PayLine.Category)
}
