package employee

import (
	"context"
	"testing"
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/employee"
	"github.com/hrapp/hr-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_GetDetail(t *testing.T) {
	kst := time.FixedZone("KST", 9*3600)
	// 2026-10-15 23:30 UTC is already the 16th in Seoul
	now := func() time.Time { return time.Date(2026, 10, 15, 23, 30, 0, 0, time.UTC) }

	employees := memory.NewEmployeeRepository()
	email := "kim@example.com"
	days := 18.0
	_, err := employees.Create(context.Background(), employee.Employee{
		EmployeeID: "E001", Name: "김철수", PasswordHash: "x", Email: &email, TotalLeaveDays: &days,
	})
	require.NoError(t, err)

	svc := NewEmployeeService(employees, kst, now)

	detail, err := svc.GetDetail(context.Background(), "E001")
	require.NoError(t, err)
	assert.Equal(t, "김철수", detail.Name)
	assert.Equal(t, "kim@example.com", detail.Email)
	assert.Equal(t, "-", detail.Phone)
	assert.Equal(t, 18.0, detail.TotalLeaveDays)

	placeholder, err := svc.GetDetail(context.Background(), "E404")
	require.NoError(t, err)
	assert.Equal(t, employee.UnknownName, placeholder.Name)
	assert.Equal(t, "2026-10-16", placeholder.JoinDate)
	assert.Equal(t, employee.DefaultAnnualLeaveDays, placeholder.TotalLeaveDays)
}
