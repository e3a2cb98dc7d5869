package notification

import "context"

type Service interface {
	// Publish pushes an event to every open stream of the employee
	Publish(employeeID string, event string, data interface{})

	// Subscribe opens a stream for the employee; the cleanup func must be called on disconnect
	Subscribe(ctx context.Context, employeeID string) (<-chan SSEEvent, func())
}
