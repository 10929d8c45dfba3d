package engine_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/award-engine/engine"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(s string) engine.Date {
	d, err := engine.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func datetime(s string) engine.DateTime {
	dt, err := engine.ParseDateTime(s)
	if err != nil {
		panic(err)
	}
	return dt
}

// newTestTable builds an Aged Care Award rule set with the 2025-07-01
// dce_level_3 rates.
func newTestTable() *engine.RuleTable {
	return engine.NewRuleTable(
		engine.AwardMetadata{
			Code:      "MA000018",
			Name:      "Aged Care Award 2010",
			Version:   "2025-07-01",
			SourceURL: "https://www.fwc.gov.au/documents/awards/ma000018.docx",
		},
		map[string]engine.Classification{
			"dce_level_3": {
				Name:        "Direct Care Employee Level 3 - Qualified",
				Description: "Qualified direct care worker",
				Clause:      "14.2",
			},
		},
		[]engine.RateEntry{
			{
				EffectiveDate: date("2025-07-01"),
				Rates: map[string]engine.ClassificationRate{
					"dce_level_3": {Weekly: dec("1084.70"), Hourly: dec("28.54")},
				},
				Allowances: engine.AllowanceRates{
					LaundryPerShift: dec("0.32"),
					LaundryPerWeek:  dec("1.49"),
				},
			},
		},
		engine.PenaltyRates{Clause: "23.1, 23.2(a)", FullTime: dec("1.50"), PartTime: dec("1.50"), Casual: dec("1.75")},
		engine.PenaltyRates{Clause: "23.1, 23.2(b)", FullTime: dec("1.75"), PartTime: dec("1.75"), Casual: dec("2.00")},
		engine.WeekdayOvertime{
			Clause:        "25.1(a)(i)(A)",
			FirstTwoHours: engine.OvertimeRates{FullTime: dec("1.50"), PartTime: dec("1.50"), Casual: dec("1.875")},
			AfterTwoHours: engine.OvertimeRates{FullTime: dec("2.00"), PartTime: dec("2.00"), Casual: dec("2.50")},
		},
		engine.WeekendOvertime{
			Clause:   "25.1(a)(i)(B)",
			Saturday: engine.OvertimeRates{FullTime: dec("2.00"), PartTime: dec("2.00"), Casual: dec("2.50")},
			Sunday:   engine.OvertimeRates{FullTime: dec("2.00"), PartTime: dec("2.00"), Casual: dec("2.50")},
		},
		decimal.NewFromInt(8),
	)
}

func testEmployee(et engine.EmploymentType, tags ...string) engine.Employee {
	return engine.Employee{
		ID:                  "emp_001",
		EmploymentType:      et,
		ClassificationCode:  "dce_level_3",
		DateOfBirth:         engine.NewDate(1990, time.January, 15),
		EmploymentStartDate: engine.NewDate(2023, time.June, 1),
		Tags:                tags,
	}
}

func testShift(id, day, start, end string) engine.Shift {
	return engine.Shift{
		ID:        id,
		Date:      date(day),
		StartTime: datetime(day + "T" + start),
		EndTime:   datetime(day + "T" + end),
	}
}

// overnightShift spans two calendar days.
func overnightShift(id, startDay, start, endDay, end string) engine.Shift {
	return engine.Shift{
		ID:        id,
		Date:      date(startDay),
		StartTime: datetime(startDay + "T" + start),
		EndTime:   datetime(endDay + "T" + end),
	}
}

// weekOf2026Jan12 is a Monday-to-Sunday pay period used across tests.
// 2026-01-12 is a Monday; 2026-01-17 and 2026-01-18 are the weekend.
func weekOf2026Jan12() engine.PayPeriod {
	return engine.PayPeriod{
		StartDate: date("2026-01-12"),
		EndDate:   date("2026-01-18"),
	}
}
