// Package viewmodel holds the record shapes the web front-end renders.
// JSON field names are part of the contract with presentation code.
package viewmodel

// WeeklyWorkData is one bar of the weekly work-hours chart.
type WeeklyWorkData struct {
	Day   string  `json:"day"`
	Work  float64 `json:"work"`
	Color string  `json:"color"`
}

// WorkSummary carries both display strings and raw hours for the same quantities.
// Build it with NewWorkSummary to keep them consistent.
type WorkSummary struct {
	TotalString    string  `json:"totalString"`
	WorkHours      float64 `json:"workHours"`
	OvertimeHours  float64 `json:"overtimeHours"`
	WorkString     string  `json:"workString"`
	OvertimeString string  `json:"overtimeString"`
}

// WeeklyStatus is a row in the weekly status table.
type WeeklyStatus struct {
	Date      string `json:"date"`
	WorkTime  string `json:"workTime"`
	Overtime  string `json:"overtime"`
	TotalTime string `json:"totalTime"`
	Status    string `json:"status"`
}

// Application is a row in the recent-requests table.
type Application struct {
	Type        string `json:"type"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Duration    string `json:"duration"`
	RequestDate string `json:"requestDate"`
	Status      string `json:"status"`
}

// AttendanceRecord is a row in the clock-in/out log.
type AttendanceRecord struct {
	Date             string `json:"date"`
	DayOfWeek        string `json:"dayOfWeek"`
	ClockInTime      string `json:"clockInTime"`
	ClockInLocation  string `json:"clockInLocation"`
	ClockOutTime     string `json:"clockOutTime"`
	ClockOutLocation string `json:"clockOutLocation"`
	Count            string `json:"count"`
	TotalWorkTime    string `json:"totalWorkTime"`
	Status           string `json:"status"`
}
