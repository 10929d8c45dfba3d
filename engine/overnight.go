/*
overnight.go - Overnight shift calculation

PURPOSE:
  Prices a shift that may cross midnight by segmenting it at day
  boundaries and applying each segment's own rate: ordinary time for
  weekday segments, the weekend penalty for Saturday and Sunday segments.
  A Saturday-to-Sunday shift therefore earns the Saturday penalty until
  midnight and the Sunday penalty after it.
*/
package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// OvernightShiftResult carries one pay line per day segment, the audit
// steps for segmentation and each segment, and the total across segments.
type OvernightShiftResult struct {
	PayLines    []PayLine
	AuditSteps  []AuditStep
	TotalAmount decimal.Decimal
}

// CalculateOvernightShift prices a possibly midnight-crossing shift
// segment by segment. Audit steps are numbered from startStep: base rate
// lookup, segmentation, one step per segment, then a total summary.
func CalculateOvernightShift(shift Shift, employee Employee, table *RuleTable, startStep int) (OvernightShiftResult, error) {
	stepNumber := startStep

	baseRateResult, err := ResolveBaseRate(employee, shift.Date, table, stepNumber)
	if err != nil {
		return OvernightShiftResult{}, err
	}
	baseRate := baseRateResult.Rate
	auditSteps := []AuditStep{baseRateResult.AuditStep}
	stepNumber++

	segments := SegmentByDay(shift)

	segmentDescriptions := make([]Snapshot, 0, len(segments))
	for _, s := range segments {
		segmentDescriptions = append(segmentDescriptions, Snapshot{
			"day_type":   s.DayType.Display(),
			"hours":      s.Hours,
			"start_time": s.StartTime,
			"end_time":   s.EndTime,
		})
	}

	var segmentationReasoning string
	if len(segments) == 1 {
		segmentationReasoning = fmt.Sprintf(
			"Shift is entirely within %s - no midnight crossing",
			segments[0].DayType.Display())
	} else {
		parts := make([]string, 0, len(segments))
		for _, s := range segments {
			parts = append(parts, fmt.Sprintf("%s: %sh", s.DayType.Display(), s.Hours))
		}
		segmentationReasoning = fmt.Sprintf(
			"Shift crosses midnight: split into %d segments (%s)",
			len(segments), strings.Join(parts, ", "))
	}

	auditSteps = append(auditSteps, AuditStep{
		StepNumber: stepNumber,
		RuleID:     "shift_segmentation",
		RuleName:   "Shift Day Segmentation",
		ClauseRef:  "23",
		Input: Snapshot{
			"shift_id":    shift.ID,
			"start_time":  shift.StartTime,
			"end_time":    shift.EndTime,
			"total_hours": shift.WorkedHours(),
		},
		Output: Snapshot{
			"segment_count": len(segments),
			"segments":      segmentDescriptions,
		},
		Reasoning: segmentationReasoning,
	})
	stepNumber++

	var payLines []PayLine
	totalAmount := decimal.Zero

	for _, segment := range segments {
		payLine, segmentStep := overnightSegmentPay(segment, shift.ID, employee, baseRate, table, stepNumber)
		totalAmount = totalAmount.Add(payLine.Amount)
		payLines = append(payLines, payLine)
		auditSteps = append(auditSteps, segmentStep)
		stepNumber++
	}

	segmentAmounts := make([]decimal.Decimal, 0, len(payLines))
	for _, p := range payLines {
		segmentAmounts = append(segmentAmounts, p.Amount)
	}

	auditSteps = append(auditSteps, AuditStep{
		StepNumber: stepNumber,
		RuleID:     "overnight_shift_total",
		RuleName:   "Overnight Shift Total Calculation",
		ClauseRef:  "23",
		Input: Snapshot{
			"shift_id":        shift.ID,
			"segment_count":   len(payLines),
			"segment_amounts": segmentAmounts,
		},
		Output: Snapshot{
			"total_amount": totalAmount,
			"total_hours":  shift.WorkedHours(),
		},
		Reasoning: fmt.Sprintf(
			"Total overnight shift pay: %d segment(s) = $%s",
			len(payLines), totalAmount),
	})

	return OvernightShiftResult{
		PayLines:    payLines,
		AuditSteps:  auditSteps,
		TotalAmount: totalAmount,
	}, nil
}

func overnightSegmentPay(segment ShiftSegment, shiftID string, employee Employee, baseRate decimal.Decimal, table *RuleTable, stepNumber int) (PayLine, AuditStep) {
	switch segment.DayType {
	case Saturday:
		result := CalculateSaturdayPay(segment, shiftID, employee, baseRate, table, stepNumber)
		return result.PayLine, result.AuditStep
	case Sunday:
		result := CalculateSundayPay(segment, shiftID, employee, baseRate, table, stepNumber)
		return result.PayLine, result.AuditStep
	default:
		effectiveRate := baseRate
		category := CategoryOrdinary
		clauseRef := "22.1"
		if employee.IsCasual() {
			effectiveRate = baseRate.Mul(CasualLoadingMultiplier())
			category = CategoryOrdinaryCasual
			clauseRef = "10.4(b), 22.1"
		}
		amount := segment.Hours.Mul(effectiveRate)

		payLine := PayLine{
			Date:      segment.StartTime.DateOf(),
			ShiftID:   shiftID,
			Category:  category,
			Hours:     segment.Hours,
			Rate:      effectiveRate,
			Amount:    amount,
			ClauseRef: clauseRef,
		}
		auditStep := AuditStep{
			StepNumber: stepNumber,
			RuleID:     "weekday_ordinary",
			RuleName:   "Weekday Ordinary Time",
			ClauseRef:  clauseRef,
			Input: Snapshot{
				"hours":           segment.Hours,
				"base_rate":       baseRate,
				"employment_type": employee.EmploymentType,
				"day_type":        Weekday.Display(),
			},
			Output: Snapshot{
				"effective_rate": effectiveRate,
				"amount":         amount,
				"category":       category,
			},
			Reasoning: fmt.Sprintf(
				"Weekday ordinary time: %s hours × $%s = $%s",
				segment.Hours, effectiveRate, amount),
		}
		return payLine, auditStep
	}
}
