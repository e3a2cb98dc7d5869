package dashboard

import "github.com/hrapp/hr-backend-go/internal/domain/viewmodel"

// Bar colours of the weekly work chart.
const (
	ColorWorkday  = "#4F46E5"
	ColorOvertime = "#F97316"
	ColorWeekend  = "#D1D5DB"
)

// SummaryResponse feeds the personal dashboard cards for the current month.
type SummaryResponse struct {
	MyRequestCount  int64   `json:"myRequestCount"`
	WorkTimeSummary string  `json:"workTimeSummary"`
	LeaveBalance    float64 `json:"leaveBalance"`
	OutingCount     int64   `json:"outingCount"`
}

// WorkResponse feeds the weekly work chart and its summary header.
type WorkResponse struct {
	Summary viewmodel.WorkSummary      `json:"summary"`
	Weekly  []viewmodel.WeeklyWorkData `json:"weekly"`
}
