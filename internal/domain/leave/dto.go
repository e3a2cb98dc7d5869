package leave

import (
	"time"

	"github.com/hrapp/hr-backend-go/internal/pkg/validator"
)

// Leave kinds reported in the personal leave status, in display order.
const (
	KindAnnual = iota + 1
	KindFamilyEvent
	KindSick
	KindPublic
)

var kindNames = map[int]string{
	KindAnnual:      "연차휴가",
	KindFamilyEvent: "경조사휴가",
	KindSick:        "병가휴가",
	KindPublic:      "공가 휴가",
}

// KindName returns the display name of a leave kind.
func KindName(kind int) string {
	return kindNames[kind]
}

type LeaveItem struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	TotalDays     float64 `json:"total_days"`
	UsedDays      float64 `json:"used_days"`
	RemainingDays float64 `json:"remaining_days"`
}

type LeaveStatusResponse struct {
	TotalUsedAll float64     `json:"total_used_all"`
	Leaves       []LeaveItem `json:"leaves"`
}

type ScheduleFilter struct {
	Year  int
	Month int
	Start string
	End   string
}

// Window resolves the filter to an inclusive time range in loc.
// Explicit start/end win over year/month; with neither the current month is used.
func (f *ScheduleFilter) Window(now time.Time, loc *time.Location) (time.Time, time.Time, error) {
	if f.Start != "" && f.End != "" {
		start, okStart := validator.IsValidDate(f.Start)
		end, okEnd := validator.IsValidDate(f.End)
		if !okStart || !okEnd {
			return time.Time{}, time.Time{}, validator.ValidationErrors{{
				Field:   "start",
				Message: "start and end must be in YYYY-MM-DD format",
			}}
		}
		return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc),
			time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, loc), nil
	}

	year, month := now.In(loc).Year(), int(now.In(loc).Month())
	if f.Year != 0 || f.Month != 0 {
		if !validator.IsValidYearMonth(f.Year, f.Month) {
			return time.Time{}, time.Time{}, validator.ValidationErrors{{
				Field:   "month",
				Message: "year and month must describe a valid calendar month",
			}}
		}
		year, month = f.Year, f.Month
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	return first, time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, 0, loc), nil
}

// ScheduleRow is a leave calendar entry.
type ScheduleRow struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	Dept      string `json:"dept"`
	Rank      string `json:"rank"`
	Item      string `json:"item"`
	Type      string `json:"type"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  string `json:"duration"`
	Status    string `json:"status"`
}
