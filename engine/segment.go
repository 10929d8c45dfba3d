/*
segment.go - Shift segmentation by calendar day

PURPOSE:
  Splits a shift into segments at midnight boundaries so each segment falls
  on exactly one calendar day, then tags every segment with its day type.
  Overnight shifts produce one segment per day they touch.

KEY CONCEPTS:
  - Day Type: Weekday, Saturday, or Sunday, derived from the segment's own
    start instant. An overnight Saturday-to-Sunday shift yields a Saturday
    segment and a Sunday segment.
  - Zero-Hour Segments: A shift ending exactly at midnight produces no
    empty trailing segment.
*/
package engine

import "time"

// DayTypeOf classifies an instant by its calendar day.
func DayTypeOf(dt DateTime) DayType {
	switch dt.Weekday() {
	case time.Saturday:
		return Saturday
	case time.Sunday:
		return Sunday
	default:
		return Weekday
	}
}

// SegmentByDay splits a shift at midnight boundaries. Each returned
// segment carries its day type and its span in hours. Break deductions
// are not applied here; segments cover the raw shift span.
func SegmentByDay(shift Shift) []ShiftSegment {
	if !shift.StartTime.Before(shift.EndTime.Time) {
		return nil
	}

	var segments []ShiftSegment
	cursor := shift.StartTime
	for cursor.Before(shift.EndTime.Time) {
		segmentEnd := cursor.NextMidnight()
		if shift.EndTime.Before(segmentEnd.Time) {
			segmentEnd = shift.EndTime
		}

		minutes := cursor.MinutesUntil(segmentEnd)
		if minutes > 0 {
			segments = append(segments, ShiftSegment{
				StartTime: cursor,
				EndTime:   segmentEnd,
				DayType:   DayTypeOf(cursor),
				Hours:     minutesToHours(minutes),
			})
		}
		cursor = segmentEnd
	}
	return segments
}
