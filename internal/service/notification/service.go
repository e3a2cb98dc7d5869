package notification

import (
	"context"
	"log/slog"

	"github.com/hrapp/hr-backend-go/internal/domain/notification"
	"github.com/hrapp/hr-backend-go/internal/pkg/sse"
)

type service struct {
	hub *sse.Hub
}

func NewNotificationService(hub *sse.Hub) notification.Service {
	return &service{hub: hub}
}

// Publish implements notification.Service.
func (s *service) Publish(employeeID string, event string, data interface{}) {
	s.hub.Publish(employeeID, sse.Event{Event: event, Data: data})
	slog.Debug("Notification published", "employee_id", employeeID, "event", event,
		"subscribers", s.hub.SubscriberCount(employeeID))
}

// Subscribe implements notification.Service.
func (s *service) Subscribe(ctx context.Context, employeeID string) (<-chan notification.SSEEvent, func()) {
	ch, cleanup := s.hub.Subscribe(employeeID)

	out := make(chan notification.SSEEvent, cap(ch))

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- notification.SSEEvent{Event: event.Event, Data: event.Data}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cleanup
}
