package scheduler

import (
	"testing"

	"github.com/yourusername/ff-toolbox/internal/rankings"
)

func newTestScheduler() *Scheduler {
	return NewScheduler(rankings.NewRefresher(nil, nil, 2025, nil, nil), nil)
}

func TestScheduleRefreshRejectsBadExpression(t *testing.T) {
	s := newTestScheduler()
	if err := s.ScheduleRefresh("not a cron expression"); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
}

func TestStartRequiresJobs(t *testing.T) {
	s := newTestScheduler()
	if err := s.Start(); err == nil {
		t.Fatal("expected error starting scheduler with no jobs")
	}
}

func TestStartStopLifecycle(t *testing.T) {
	s := newTestScheduler()

	if err := s.ScheduleRefresh("0 6 * * *"); err != nil {
		t.Fatalf("failed to schedule: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("failed to start: %v", err)
	}
	if !s.IsRunning() {
		t.Error("expected scheduler to be running")
	}
	if err := s.Start(); err == nil {
		t.Error("expected error starting twice")
	}
	if err := s.ScheduleRefresh("0 7 * * *"); err == nil {
		t.Error("expected error scheduling while running")
	}

	if err := s.Stop(); err != nil {
		t.Fatalf("failed to stop: %v", err)
	}
	if s.IsRunning() {
		t.Error("expected scheduler to be stopped")
	}
	// Stopping again is a no-op
	if err := s.Stop(); err != nil {
		t.Errorf("unexpected error on second stop: %v", err)
	}
}
