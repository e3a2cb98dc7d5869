package session

import (
	"sync"
	"sync/atomic"

	"github.com/hrapp/hr-backend-go/internal/domain/user"
)

// Observer receives the current user, or nil when nobody is signed in.
type Observer func(*user.User)

type subscriber struct {
	fn     Observer
	active atomic.Bool
}

type notification struct {
	value *user.User
	subs  []*subscriber
}

// Store holds the currently authenticated user and fans changes out to observers.
//
// Notifications are synchronous and delivered in subscription order. A Set issued
// from inside an observer is queued behind the fan-out in progress, so every
// observer sees the same sequence of values.
type Store struct {
	// wmu serialises writers; it is never held while observers run.
	wmu sync.Mutex

	mu       sync.Mutex
	value    *user.User
	subs     []*subscriber
	queue    []notification
	flushing bool
}

// NewStore creates an empty store holding no user.
func NewStore() *Store {
	return &Store{}
}

// Get returns the current user or nil. The returned value is shared and must not be mutated.
func (s *Store) Get() *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set replaces the held user and notifies all observers.
func (s *Store) Set(u *user.User) {
	s.wmu.Lock()
	start := s.store(clone(u))
	s.wmu.Unlock()

	if start {
		s.flush()
	}
}

// Update replaces the held user with fn(current) and notifies all observers.
// fn must not call Set or Update on the same store.
func (s *Store) Update(fn func(*user.User) *user.User) {
	s.wmu.Lock()
	next := fn(s.Get())
	start := s.store(clone(next))
	s.wmu.Unlock()

	if start {
		s.flush()
	}
}

// Subscribe registers fn, calls it once with the current value and then on every change.
// When no fan-out is running the first call happens before Subscribe returns; otherwise
// the running fan-out delivers it after the notifications queued ahead of it.
// The returned function removes the registration; calling it more than once is a no-op.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	sub := &subscriber{fn: fn}
	sub.active.Store(true)

	// The initial value goes through the queue so it cannot overtake a
	// fan-out already in flight on another goroutine.
	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.queue = append(s.queue, notification{value: s.value, subs: []*subscriber{sub}})
	start := !s.flushing
	s.flushing = true
	s.mu.Unlock()

	if start {
		s.flush()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.active.Store(false)
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, candidate := range s.subs {
				if candidate == sub {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					break
				}
			}
		})
	}
}

// SubscriberCount returns the number of registered observers.
func (s *Store) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// store records the value and queues its notification. It reports whether
// the caller has to drain the queue.
func (s *Store) store(u *user.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = u
	s.queue = append(s.queue, notification{
		value: u,
		subs:  append([]*subscriber(nil), s.subs...),
	})
	if s.flushing {
		return false
	}
	s.flushing = true
	return true
}

func (s *Store) flush() {
	drained := false
	defer func() {
		// An observer panicked; drop pending work so later writers can flush again.
		if !drained {
			s.mu.Lock()
			s.queue = nil
			s.flushing = false
			s.mu.Unlock()
		}
	}()

	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.flushing = false
			s.mu.Unlock()
			drained = true
			return
		}
		n := s.queue[0]
		s.queue[0] = notification{}
		s.queue = s.queue[1:]
		s.mu.Unlock()

		for _, sub := range n.subs {
			if sub.active.Load() {
				sub.fn(n.value)
			}
		}
	}
}

func clone(u *user.User) *user.User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Role != nil {
		role := *u.Role
		c.Role = &role
	}
	return &c
}
