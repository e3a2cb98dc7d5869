package application

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Application statuses as stored.
const (
	StatusPending  = "대기"
	StatusApproved = "승인"
	StatusRejected = "반려"

	// StatusApprovedDisplay is how approved rows are labelled in manager lists.
	StatusApprovedDisplay = "승인완료"
)

var validStatuses = []string{StatusPending, StatusApproved, StatusRejected}

// Application types with special handling.
const (
	TypeAnnualLeave   = "연차"
	TypeMorningHalf   = "오전 반차"
	TypeAfternoonHalf = "오후 반차"
	TypeSickLeave     = "병가"
	TypeFamilyEvent   = "경조사 휴가"
	TypePublicLeave   = "공가"
	TypeAway          = "이석"
	TypeOuting        = "외출"
	TypeBusinessTrip  = "출장"
)

// OutingTypes are counted as time away from the desk on the dashboard.
var OutingTypes = []string{TypeAway, TypeOuting, TypeBusinessTrip}

// Categories for manager lists.
const (
	CategoryLeave      = "휴가"
	CategoryFieldWork  = "외근"
	CategoryTrip       = "출장"
	CategoryExtension  = "연장"
	CategoryCorrection = "수정"
	CategoryOther      = "기타"
)

type Application struct {
	ID         string
	EmployeeID string
	Type       string
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	Status     string
	CreatedAt  time.Time

	// DTO / Join
	EmployeeName     *string
	EmployeeDept     *string
	EmployeePosition *string
}

// normalizedType composes Hangul jamo so keyword matching works for NFD input.
func (a Application) normalizedType() string {
	return norm.NFC.String(a.Type)
}

// Category buckets the free-form type by keyword.
func (a Application) Category() string {
	t := a.normalizedType()
	switch {
	case strings.Contains(t, "휴가") || strings.Contains(t, "연차"):
		return CategoryLeave
	case strings.Contains(t, "외근"):
		return CategoryFieldWork
	case strings.Contains(t, "출장"):
		return CategoryTrip
	case strings.Contains(t, "연장") || strings.Contains(t, "근무"):
		return CategoryExtension
	case strings.Contains(t, "수정") || strings.Contains(t, "정정"):
		return CategoryCorrection
	default:
		return CategoryOther
	}
}

// IsHalfDay reports a morning or afternoon half-day leave.
func (a Application) IsHalfDay() bool {
	return strings.Contains(a.normalizedType(), "반차")
}

// IsDayBased reports types that are measured in whole days.
func (a Application) IsDayBased() bool {
	t := a.normalizedType()
	return t == TypeAnnualLeave || t == TypeSickLeave || t == TypePublicLeave || strings.Contains(t, "휴가")
}

// IsLeave reports types shown on the leave calendar.
func (a Application) IsLeave() bool {
	t := a.normalizedType()
	for _, kw := range []string{"휴가", "연차", "반차", "병가"} {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

// IsCancellation reports a request cancelling an earlier leave.
func (a Application) IsCancellation() bool {
	return strings.Contains(a.normalizedType(), "취소")
}

// Span is the exact time between start and end.
func (a Application) Span() time.Duration {
	d := a.EndDate.Sub(a.StartDate)
	if d < 0 {
		return 0
	}
	return d
}

// Days counts calendar days in loc from start to end inclusive, at least one.
// A nil loc keeps the locations the dates carry.
func (a Application) Days(loc *time.Location) int {
	startDate, endDate := a.StartDate, a.EndDate
	if loc != nil {
		startDate, endDate = startDate.In(loc), endDate.In(loc)
	}
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// DisplayStatus maps stored statuses to their list labels.
func (a Application) DisplayStatus() string {
	if a.Status == StatusApproved {
		return StatusApprovedDisplay
	}
	return a.Status
}

// DayDuration renders the length of a day-based request, e.g. "3일" or "0.5일".
func (a Application) DayDuration(loc *time.Location) string {
	if a.IsHalfDay() {
		return "0.5일"
	}
	return fmt.Sprintf("%d일", a.Days(loc))
}

// Applicant returns the joined employee columns, falling back to the raw id
// when the applicant no longer exists.
func (a Application) Applicant() (name, dept, rank string) {
	name, dept, rank = a.EmployeeID, "-", "-"
	if a.EmployeeName != nil {
		name = *a.EmployeeName
	}
	if a.EmployeeDept != nil && *a.EmployeeDept != "" {
		dept = *a.EmployeeDept
	}
	if a.EmployeePosition != nil && *a.EmployeePosition != "" {
		rank = *a.EmployeePosition
	}
	return name, dept, rank
}

// IsValidStatus reports whether s is a storable status.
func IsValidStatus(s string) bool {
	for _, v := range validStatuses {
		if v == s {
			return true
		}
	}
	return false
}
