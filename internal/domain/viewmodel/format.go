package viewmodel

import (
	"fmt"
	"math"
	"time"
)

// Placeholder is shown for any value that does not exist yet.
const Placeholder = "-"

// Korean weekday labels indexed by time.Weekday.
var weekdayLabels = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// WeekdayLabel returns the short Korean label for d.
func WeekdayLabel(d time.Weekday) string {
	return weekdayLabels[d]
}

// FormatHM renders a duration as zero-padded HH:MM, truncating seconds.
// Negative durations render as 00:00.
func FormatHM(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Hours converts d to hours rounded to two decimals.
func Hours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// NewWorkSummary derives every WorkSummary field from the same two durations.
func NewWorkSummary(work, overtime time.Duration) WorkSummary {
	return WorkSummary{
		TotalString:    FormatHM(work + overtime),
		WorkHours:      Hours(work),
		OvertimeHours:  Hours(overtime),
		WorkString:     FormatHM(work),
		OvertimeString: FormatHM(overtime),
	}
}

// ShortDate renders MM/DD(요일), as used in weekly tables.
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%s(%s)", t.Format("01/02"), WeekdayLabel(t.Weekday()))
}

// CalendarDate renders M/D(요일) without zero padding, as used in manager lists.
func CalendarDate(t time.Time) string {
	return fmt.Sprintf("%d/%d(%s)", int(t.Month()), t.Day(), WeekdayLabel(t.Weekday()))
}

// DotDate renders YYYY.MM.DD.
func DotDate(t time.Time) string {
	return t.Format("2006.01.02")
}

// ClockTime renders HH:MM, or the placeholder for a missing time.
func ClockTime(t *time.Time) string {
	if t == nil {
		return Placeholder
	}
	return t.Format("15:04")
}
