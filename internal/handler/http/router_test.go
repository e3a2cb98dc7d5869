package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/auth"
	"github.com/hrapp/hr-backend-go/internal/domain/user"
	"github.com/hrapp/hr-backend-go/internal/domain/viewmodel"
	"github.com/hrapp/hr-backend-go/internal/pkg/jwt"
	"github.com/hrapp/hr-backend-go/internal/pkg/sse"
	"github.com/hrapp/hr-backend-go/internal/repository/memory"
	applicationService "github.com/hrapp/hr-backend-go/internal/service/application"
	attendanceService "github.com/hrapp/hr-backend-go/internal/service/attendance"
	authService "github.com/hrapp/hr-backend-go/internal/service/auth"
	dashboardService "github.com/hrapp/hr-backend-go/internal/service/dashboard"
	employeeService "github.com/hrapp/hr-backend-go/internal/service/employee"
	leaveService "github.com/hrapp/hr-backend-go/internal/service/leave"
	notificationService "github.com/hrapp/hr-backend-go/internal/service/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

var kst = time.FixedZone("KST", 9*3600)

// Friday 2026-10-16 10:00 KST
func fixedNow() time.Time { return time.Date(2026, 10, 16, 10, 0, 0, 0, kst) }

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type testEnv struct {
	router http.Handler
	jwt    jwt.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	employees := memory.NewEmployeeRepository()
	attendances := memory.NewAttendanceRepository(employees)
	applications := memory.NewApplicationRepository(employees)
	employees.Now, attendances.Now, applications.Now = fixedNow, fixedNow, fixedNow

	jwtSvc := jwt.NewJWTService(handlerTestSecret, "1h", "5m")
	notifier := notificationService.NewNotificationService(sse.NewHub(0))
	calculator := leaveService.NewQuotaCalculator(kst)

	authSvc := authService.NewAuthService(memory.Transactor{}, employees, jwtSvc, authService.Options{
		AllowSignup:      true,
		DefaultLeaveDays: 15,
		Now:              fixedNow,
	})
	for _, s := range []auth.SignupRequest{
		{EmployeeID: "E001", Password: "password", Name: "김철수"},
		{EmployeeID: "E002", Password: "password", Name: "이영희"},
		{EmployeeID: "M001", Password: "password", Name: "박관리", Role: string(user.RoleManager)},
	} {
		_, err := authSvc.Signup(context.Background(), s)
		require.NoError(t, err)
	}

	handlers := Handlers{
		Auth: NewAuthHandler(authSvc),
		Attendance: NewAttendanceHandler(attendanceService.NewAttendanceService(attendances, employees, attendanceService.Options{
			Location: kst, StandardCloseHour: 18, Now: fixedNow,
		})),
		Application: NewApplicationHandler(applicationService.NewApplicationService(applications, employees, notifier, applicationService.Options{
			Location: kst, Now: fixedNow,
		})),
		Leave: NewLeaveHandler(leaveService.NewLeaveService(applications, employees, calculator, leaveService.Options{
			Location: kst, Now: fixedNow,
		})),
		Dashboard: NewDashboardHandler(dashboardService.NewDashboardService(attendances, applications, employees, calculator, dashboardService.Options{
			Location: kst, StandardCloseHour: 18, Now: fixedNow,
		})),
		Employee:     NewEmployeeHandler(employeeService.NewEmployeeService(employees, kst, fixedNow)),
		Notification: NewNotificationHandler(notifier, jwtSvc, time.Hour),
	}

	router := NewRouter(RouterOptions{
		AllowedOrigins: []string{"http://localhost:5173"},
		Env:            "test",
		LogLevel:       ParseLogLevel("error"),
	}, jwtSvc, handlers)

	return &testEnv{router: router, jwt: jwtSvc}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (e *testEnv) login(t *testing.T, employeeID string) string {
	t.Helper()
	rec, env := e.do(t, http.MethodPost, "/api/auth/login", "", auth.LoginRequest{EmployeeID: employeeID, Password: "password"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var token auth.TokenResponse
	require.NoError(t, json.Unmarshal(env.Data, &token))
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

func TestAuthHandler_LoginAndMe(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/api/auth/login", "", auth.LoginRequest{EmployeeID: "M001", Password: "password"})
	require.Equal(t, http.StatusOK, rec.Code)
	var token auth.TokenResponse
	require.NoError(t, json.Unmarshal(body.Data, &token))
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.AccessTokenExpiresIn)

	rec, body = env.do(t, http.MethodGet, "/api/auth/me", token.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me user.User
	require.NoError(t, json.Unmarshal(body.Data, &me))
	assert.Equal(t, "M001", me.ID)
	assert.Equal(t, "박관리", me.Name)
	require.NotNil(t, me.Role)
	assert.Equal(t, "manager", *me.Role)
}

func TestAuthHandler_LoginFailures(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/api/auth/login", "", auth.LoginRequest{EmployeeID: "E001", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)

	rec, _ = env.do(t, http.MethodPost, "/api/auth/login", "", auth.LoginRequest{EmployeeID: "nobody", Password: "password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, body = env.do(t, http.MethodPost, "/api/auth/login", "", auth.LoginRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Details, "employee_id")
}

func TestAuthHandler_MeRequiresAccessToken(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	sseToken, _, err := env.jwt.GenerateSSEToken("E001")
	require.NoError(t, err)
	rec, _ = env.do(t, http.MethodGet, "/api/auth/me", sseToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_SignupTest(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.do(t, http.MethodPost, "/api/auth/signup-test", "", auth.SignupRequest{EmployeeID: "E100", Password: "secret", Name: "최신입"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = env.do(t, http.MethodPost, "/api/auth/signup-test", "", auth.SignupRequest{EmployeeID: "E001", Password: "secret", Name: "중복"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = env.do(t, http.MethodPost, "/api/auth/signup-test", "", auth.SignupRequest{EmployeeID: "E101"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAttendanceHandler_ClockInOut(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "E001")

	rec, _ := env.do(t, http.MethodPut, "/api/attendance/clock-out", token, map[string]string{})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = env.do(t, http.MethodPost, "/api/attendance/clock-in", token, map[string]string{"location": "서울특별시 강남구 테헤란로 1"})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, _ = env.do(t, http.MethodPost, "/api/attendance/clock-in", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = env.do(t, http.MethodPut, "/api/attendance/clock-out", token, map[string]string{})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = env.do(t, http.MethodPut, "/api/attendance/clock-out", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_ClockInForAnotherEmployeeForbidden(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "E001")

	rec, _ := env.do(t, http.MethodPost, "/api/attendance/clock-in", token, map[string]string{"employee_id": "E002"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAttendanceHandler_WeeklyAccess(t *testing.T) {
	env := newTestEnv(t)
	employeeToken := env.login(t, "E001")
	managerToken := env.login(t, "M001")

	rec, body := env.do(t, http.MethodGet, "/api/attendance/weekly/E001", employeeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []viewmodel.WeeklyStatus
	require.NoError(t, json.Unmarshal(body.Data, &rows))
	require.Len(t, rows, 7)
	assert.Equal(t, "10/12(월)", rows[0].Date)

	rec, _ = env.do(t, http.MethodGet, "/api/attendance/weekly/E002", employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = env.do(t, http.MethodGet, "/api/attendance/weekly/E002", managerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAttendanceHandler_Monthly(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "E001")

	rec, body := env.do(t, http.MethodGet, "/api/attendance/monthly/E001?year=2026&month=10", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var monthly struct {
		UserName string                       `json:"userName"`
		Records  []viewmodel.AttendanceRecord `json:"records"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &monthly))
	assert.Equal(t, "김철수", monthly.UserName)
	assert.Len(t, monthly.Records, 31)

	rec, _ = env.do(t, http.MethodGet, "/api/attendance/monthly/E001?year=2026&month=13", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAttendanceHandler_RosterRequiresManager(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.do(t, http.MethodGet, "/api/attendance/all", env.login(t, "E001"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = env.do(t, http.MethodGet, "/api/attendance/all?date=2026-10-16", env.login(t, "M001"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = env.do(t, http.MethodGet, "/api/attendance/all?date=16-10-2026", env.login(t, "M001"), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestApplicationHandler_Flow(t *testing.T) {
	env := newTestEnv(t)
	employeeToken := env.login(t, "E001")
	managerToken := env.login(t, "M001")

	rec, body := env.do(t, http.MethodPost, "/api/applications", employeeToken, map[string]string{
		"application_type": "연차",
		"start_date":       "2026-10-20",
		"end_date":         "2026-10-21",
		"reason":           "가족 여행",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ApplicationID string `json:"application_id"`
		EmployeeID    string `json:"employee_id"`
		Status        string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.Equal(t, "E001", created.EmployeeID)
	assert.Equal(t, "대기", created.Status)

	rec, _ = env.do(t, http.MethodGet, "/api/applications", employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, body = env.do(t, http.MethodGet, "/api/applications/list?query="+url.QueryEscape("김철수"), managerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []struct {
		Category string `json:"category"`
		Status   string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "휴가", rows[0].Category)

	rec, _ = env.do(t, http.MethodPut, "/api/applications/"+created.ApplicationID+"/status", employeeToken, map[string]string{"status": "승인"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = env.do(t, http.MethodPut, "/api/applications/"+created.ApplicationID+"/status", managerToken, map[string]string{"status": "보류"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = env.do(t, http.MethodPut, "/api/applications/APP-missing/status", managerToken, map[string]string{"status": "승인"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = env.do(t, http.MethodPut, "/api/applications/"+created.ApplicationID+"/status", managerToken, map[string]string{"status": "승인"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body = env.do(t, http.MethodGet, "/api/applications/recent/E001", employeeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var recent []viewmodel.Application
	require.NoError(t, json.Unmarshal(body.Data, &recent))
	require.Len(t, recent, 1)
	assert.Equal(t, "2026.10.20", recent[0].StartDate)
	assert.Equal(t, "승인", recent[0].Status)

	rec, body = env.do(t, http.MethodGet, "/api/leaves/my-status", employeeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status struct {
		TotalUsedAll float64 `json:"total_used_all"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &status))
	assert.Equal(t, 2.0, status.TotalUsedAll)
}

func TestApplicationHandler_CreateValidation(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/api/applications", env.login(t, "E001"), map[string]string{
		"application_type": "외근",
		"start_date":       "2026-10-20 18:00",
		"end_date":         "2026-10-20 09:00",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Details, "end_date")
}

func TestLeaveHandler_ScheduleRequiresPermission(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.do(t, http.MethodGet, "/api/leaves/schedule?year=2026&month=10", env.login(t, "E001"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = env.do(t, http.MethodGet, "/api/leaves/schedule?year=2026&month=10", env.login(t, "M001"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboardHandler(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "E001")

	rec, body := env.do(t, http.MethodGet, "/api/dashboard/summary/E001", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary struct {
		WorkTimeSummary string  `json:"workTimeSummary"`
		LeaveBalance    float64 `json:"leaveBalance"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &summary))
	assert.Equal(t, "0h / 0h", summary.WorkTimeSummary)
	assert.Equal(t, 15.0, summary.LeaveBalance)

	rec, body = env.do(t, http.MethodGet, "/api/dashboard/work/E001", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var work struct {
		Weekly []viewmodel.WeeklyWorkData `json:"weekly"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &work))
	assert.Len(t, work.Weekly, 7)
}

func TestEmployeeHandler_UnknownReturnsPlaceholder(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/api/employees/X999", env.login(t, "E001"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &detail))
	assert.Equal(t, "알 수 없음", detail.Name)
}

func TestNotificationHandler_StreamDeliversStatusChange(t *testing.T) {
	env := newTestEnv(t)
	server := httptest.NewServer(env.router)
	defer server.Close()

	employeeToken := env.login(t, "E001")
	managerToken := env.login(t, "M001")

	_, body := env.do(t, http.MethodPost, "/api/applications", employeeToken, map[string]string{
		"application_type": "외근",
		"start_date":       "2026-10-20 09:00",
		"end_date":         "2026-10-20 12:00",
	})
	var created struct {
		ApplicationID string `json:"application_id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &created))

	_, body = env.do(t, http.MethodGet, "/api/notifications/sse-token", employeeToken, nil)
	var sseToken struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &sseToken))
	require.NotEmpty(t, sseToken.Token)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/notifications/stream?token="+sseToken.Token, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	reader := bufio.NewReader(resp.Body)
	readEvent := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "event: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			}
		}
	}

	assert.Equal(t, "connected", readEvent())

	rec, _ := env.do(t, http.MethodPut, "/api/applications/"+created.ApplicationID+"/status", managerToken, map[string]string{"status": "반려"})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "application_status", readEvent())
}

func TestNotificationHandler_StreamRejectsAccessToken(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/stream?token="+env.login(t, "E001"), nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
