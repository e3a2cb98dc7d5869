// Package client is a Go client for the HR API. It keeps the signed-in user
// in a session.Store so that UI code can observe login and logout.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/attendance"
	"github.com/hrapp/hr-backend-go/internal/domain/auth"
	"github.com/hrapp/hr-backend-go/internal/domain/dashboard"
	"github.com/hrapp/hr-backend-go/internal/domain/user"
	"github.com/hrapp/hr-backend-go/internal/domain/viewmodel"
	"github.com/hrapp/hr-backend-go/internal/session"
)

// ErrNotAuthenticated is returned by calls that need a token before Login succeeded.
var ErrNotAuthenticated = errors.New("client is not logged in")

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api status=%d code=%s: %s", e.Status, e.Code, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Session *session.Store

	// authMu orders token changes together with their session writes.
	// Session observers must not call Login or Logout.
	authMu sync.Mutex
	mu     sync.RWMutex
	token  string
}

// NewClient talks to baseURL (for example http://localhost:8000/api) and
// publishes the signed-in user to store.
func NewClient(baseURL string, store *session.Store) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Session: store,
		HTTP: &http.Client{
			Timeout: 20 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

// Token returns the current access token, empty when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Login exchanges credentials for a token, then loads the user and stores it in the session.
func (c *Client) Login(ctx context.Context, employeeID, password string) (user.User, error) {
	var token auth.TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "", auth.LoginRequest{
		EmployeeID: employeeID,
		Password:   password,
	}, &token)
	if err != nil {
		return user.User{}, err
	}

	var me user.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", token.AccessToken, nil, &me); err != nil {
		return user.User{}, err
	}

	c.authMu.Lock()
	defer c.authMu.Unlock()
	c.setToken(token.AccessToken)
	c.Session.Set(&me)
	return me, nil
}

// Logout forgets the token and clears the session.
func (c *Client) Logout() {
	c.authMu.Lock()
	defer c.authMu.Unlock()
	c.setToken("")
	c.Session.Set(nil)
}

// expire logs out only if token is still the current one, so a rejected
// request cannot end a session that a later Login started.
func (c *Client) expire(token string) {
	c.authMu.Lock()
	defer c.authMu.Unlock()
	if c.Token() != token {
		return
	}
	c.setToken("")
	c.Session.Set(nil)
}

// Recent returns the employee's applications of the last 30 days.
func (c *Client) Recent(ctx context.Context, employeeID string) ([]viewmodel.Application, error) {
	var apps []viewmodel.Application
	if err := c.authed(ctx, http.MethodGet, "/applications/recent/"+url.PathEscape(employeeID), nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Weekly returns Monday..Sunday of the current week.
func (c *Client) Weekly(ctx context.Context, employeeID string) ([]viewmodel.WeeklyStatus, error) {
	var rows []viewmodel.WeeklyStatus
	if err := c.authed(ctx, http.MethodGet, "/attendance/weekly/"+url.PathEscape(employeeID), nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Monthly returns one attendance record per day of the month.
func (c *Client) Monthly(ctx context.Context, employeeID string, year, month int) (attendance.MonthlyResponse, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(month))

	var monthly attendance.MonthlyResponse
	path := "/attendance/monthly/" + url.PathEscape(employeeID) + "?" + q.Encode()
	if err := c.authed(ctx, http.MethodGet, path, nil, &monthly); err != nil {
		return attendance.MonthlyResponse{}, err
	}
	return monthly, nil
}

// Work returns the weekly work chart with its summary.
func (c *Client) Work(ctx context.Context, employeeID string) (dashboard.WorkResponse, error) {
	var work dashboard.WorkResponse
	if err := c.authed(ctx, http.MethodGet, "/dashboard/work/"+url.PathEscape(employeeID), nil, &work); err != nil {
		return dashboard.WorkResponse{}, err
	}
	return work, nil
}

// authed sends the stored token. A 401 means that token is no longer valid,
// so the session it belongs to is cleared.
func (c *Client) authed(ctx context.Context, method, path string, body, out interface{}) error {
	token := c.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	err := c.do(ctx, method, path, token, body, out)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		c.expire(token)
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if env.Error != nil {
			apiErr.Code, apiErr.Message = env.Error.Code, env.Error.Message
		}
		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
