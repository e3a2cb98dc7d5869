package sse

import (
	"sync"
)

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 10

// Event is a message routed to the streams of one employee
type Event struct {
	EmployeeID string
	Event      string
	Data       interface{}
}

// Hub fans events out to the open streams of each employee
type Hub struct {
	mu          sync.RWMutex
	buffer      int
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates a hub; buffer <= 0 selects DefaultBuffer
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		buffer:      buffer,
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a stream for an employee and returns its channel and cleanup function
func (h *Hub) Subscribe(employeeID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.buffer)
	if h.subscribers[employeeID] == nil {
		h.subscribers[employeeID] = make(map[chan Event]struct{})
	}
	h.subscribers[employeeID][ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers[employeeID], ch)
			close(ch)
			if len(h.subscribers[employeeID]) == 0 {
				delete(h.subscribers, employeeID)
			}
		})
	}

	return ch, cleanup
}

// Publish delivers event to every stream of the employee without blocking.
// Streams whose buffer is full miss the event.
func (h *Hub) Publish(employeeID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	event.EmployeeID = employeeID
	for ch := range h.subscribers[employeeID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of open streams of an employee
func (h *Hub) SubscriberCount(employeeID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[employeeID])
}

// TotalSubscribers returns the number of open streams across all employees
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
