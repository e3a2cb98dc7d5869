package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Job represents a scheduled job
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	jobs     []Job
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	mu       sync.Mutex
	stopOnce sync.Once
}

// NewScheduler creates a scheduler whose jobs stop when parent is cancelled or Stop is called.
func NewScheduler(parent context.Context) *Scheduler {
	ctx, cancel := context.WithCancel(parent)
	return &Scheduler{
		jobs:   make([]Job, 0),
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob adds a job to the scheduler
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name:     name,
		Interval: interval,
		Fn:       fn,
	})
	slog.Info("Cron job registered", "name", name, "interval", interval)
}

// Jobs returns the registered job names in registration order.
func (s *Scheduler) Jobs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.jobs))
	for _, job := range s.jobs {
		names = append(names, job.Name)
	}
	return names
}

// Start begins running all scheduled jobs
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels every job and waits for running executions; later calls are no-ops.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		slog.Info("Stopping cron scheduler...")
		s.cancel()
		s.wg.Wait()
		slog.Info("Cron scheduler stopped")
	})
}

// runJob runs a single job on its schedule
func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	// Run immediately on start
	s.executeJob(s.ctx, job)

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-ticker.C:
			s.executeJob(s.ctx, job)
		}
	}
}

// executeJob executes a job and logs results. A panicking job is logged and
// stays scheduled.
func (s *Scheduler) executeJob(ctx context.Context, job Job) (err error) {
	start := time.Now()
	slog.Debug("Cron job starting", "name", job.Name)

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
		if err != nil {
			slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
		} else {
			slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
		}
	}()

	return job.Fn(ctx)
}

// RunOnce runs all jobs once and returns the number of failures.
func (s *Scheduler) RunOnce(ctx context.Context) int {
	s.mu.Lock()
	jobs := append([]Job(nil), s.jobs...)
	s.mu.Unlock()

	failed := 0
	for _, job := range jobs {
		if err := s.executeJob(ctx, job); err != nil {
			failed++
		}
	}
	return failed
}
