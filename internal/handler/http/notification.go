package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/notification"
	"github.com/hrapp/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrapp/hr-backend-go/internal/handler/http/response"
	"github.com/hrapp/hr-backend-go/internal/pkg/jwt"
)

// NotificationHandler defines the notification handler interface
type NotificationHandler interface {
	GetSSEToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notifService notification.Service
	jwtService   jwt.Service
	keepalive    time.Duration
}

// NewNotificationHandler creates a new notification handler; keepalive is the ping interval.
func NewNotificationHandler(notifService notification.Service, jwtService jwt.Service, keepalive time.Duration) NotificationHandler {
	if keepalive <= 0 {
		keepalive = 30 * time.Second
	}
	return &notificationHandlerImpl{
		notifService: notifService,
		jwtService:   jwtService,
		keepalive:    keepalive,
	}
}

// GetSSEToken generates a short-lived token for SSE connections
func (h *notificationHandlerImpl) GetSSEToken(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeIDFromContext(r.Context())
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(employeeID)
	if err != nil {
		response.InternalServerError(w, "Failed to generate SSE token")
		return
	}

	response.Success(w, notification.SSETokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, event string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}

// Stream handles SSE connection for real-time notifications
func (h *notificationHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter (SSE doesn't support custom headers)
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	employeeID, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.notifService.Subscribe(r.Context(), employeeID)
	defer cleanup()

	connected := map[string]string{"status": "connected", "employee_id": employeeID}
	if err := writeEvent(w, flusher, notification.EventConnected, connected); err != nil {
		return
	}

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := writeEvent(w, flusher, event.Event, event.Data); err != nil {
				return
			}

		case <-keepalive.C:
			ping := map[string]int64{"timestamp": time.Now().Unix()}
			if err := writeEvent(w, flusher, notification.EventPing, ping); err != nil {
				return
			}

		case <-r.Context().Done():
			return
		}
	}
}
