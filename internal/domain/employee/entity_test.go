package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployee_AnnualLeaveDays(t *testing.T) {
	assert.Equal(t, DefaultAnnualLeaveDays, Employee{}.AnnualLeaveDays())

	zero := 0.0
	assert.Equal(t, DefaultAnnualLeaveDays, Employee{TotalLeaveDays: &zero}.AnnualLeaveDays())

	days := 20.5
	assert.Equal(t, 20.5, Employee{TotalLeaveDays: &days}.AnnualLeaveDays())
}

func TestEmployee_SessionUser(t *testing.T) {
	u := Employee{EmployeeID: "E001", Name: "김철수"}.SessionUser()
	assert.Equal(t, "E001", u.ID)
	assert.Equal(t, "김철수", u.Name)
	assert.Nil(t, u.Role)

	role := "manager"
	u = Employee{EmployeeID: "E002", Name: "이영희", Role: &role}.SessionUser()
	require.NotNil(t, u.Role)
	assert.Equal(t, "manager", *u.Role)
}

func TestPlaceholderResponse(t *testing.T) {
	today := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	resp := PlaceholderResponse("E404", today)

	assert.Equal(t, "E404", resp.EmployeeID)
	assert.Equal(t, UnknownName, resp.Name)
	assert.Equal(t, "2026-10-16", resp.JoinDate)
	assert.Equal(t, 15.0, resp.TotalLeaveDays)
}

func TestNewEmployeeResponse(t *testing.T) {
	dept := "개발팀"
	hire := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	resp := NewEmployeeResponse(Employee{EmployeeID: "E001", Name: "김철수", Department: &dept, HireDate: &hire})

	assert.Equal(t, "개발팀", resp.Department)
	assert.Equal(t, "-", resp.Position)
	assert.Equal(t, "2024-03-02", resp.JoinDate)
	assert.Equal(t, 15.0, resp.TotalLeaveDays)
}
