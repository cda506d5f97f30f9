// Package scheduler runs the recurring background jobs behind the
// watch command: the daily inbox digest and the periodic scan for due
// reminders.
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"aide/internal/assistant"
	"aide/internal/reminder"
)

const (
	jobEmailSummary = "email_summary"
	jobReminderScan = "reminder_scan"

	jobTimeout = 2 * time.Minute
)

type Scheduler struct {
	cron      *cron.Cron
	assistant *assistant.Assistant
	store     *reminder.Store
	logger    *zap.Logger

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

func New(a *assistant.Assistant, store *reminder.Store, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:      cron.New(),
		assistant: a,
		store:     store,
		logger:    logger,
		entries:   make(map[string]cron.EntryID),
	}
}

// ScheduleEmailSummary registers a daily inbox digest job at the given
// local time in "HH:MM" form.
func (s *Scheduler) ScheduleEmailSummary(at string, maxEmails int) error {
	spec, err := dailySpec(at)
	if err != nil {
		return err
	}
	return s.register(jobEmailSummary, spec, func() {
		s.runEmailSummary(maxEmails)
	})
}

// ScheduleReminderScan registers a periodic job that logs pending
// reminders that are due.
func (s *Scheduler) ScheduleReminderScan(everyMinutes int) error {
	if everyMinutes <= 0 {
		return fmt.Errorf("scan interval must be positive, got %d", everyMinutes)
	}
	spec := fmt.Sprintf("@every %dm", everyMinutes)
	return s.register(jobReminderScan, spec, s.runReminderScan)
}

func (s *Scheduler) register(name, spec string, job func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[name]; exists {
		return fmt.Errorf("job %q is already scheduled", name)
	}

	id, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return fmt.Errorf("schedule %s: %w", name, err)
	}

	s.entries[name] = id
	return nil
}

// Jobs returns the names of scheduled jobs, sorted.
func (s *Scheduler) Jobs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove unschedules a job by name.
func (s *Scheduler) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.entries[name]
	if !exists {
		return fmt.Errorf("no job named %q", name)
	}

	s.cron.Remove(id)
	delete(s.entries, name)
	return nil
}

// Run starts the cron loop and blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	s.logger.Info("scheduler started", zap.Strings("jobs", s.Jobs()))

	<-ctx.Done()
	s.Stop()
	return nil
}

// Stop halts the cron loop, waiting for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runEmailSummary(maxEmails int) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	digest, err := s.assistant.EmailSummary(ctx, maxEmails)
	if err != nil {
		s.logger.Error("scheduled email summary failed", zap.Error(err))
		return
	}

	s.logger.Info("scheduled email summary", zap.String("digest", digest))
}

func (s *Scheduler) runReminderScan() {
	for _, rec := range dueReminders(s.store, time.Now()) {
		s.logger.Warn("reminder due",
			zap.Int64("id", rec.ID),
			zap.String("title", rec.Title),
			zap.String("due_date", rec.DueDate),
			zap.String("priority", string(rec.Priority)))
	}
}

// dueReminders returns pending reminders whose due date is on or before
// the given day. Reminders without a due date are skipped.
func dueReminders(store *reminder.Store, now time.Time) []reminder.Reminder {
	today := now.Format(reminder.DueDateLayout)

	var due []reminder.Reminder
	for _, rec := range store.List(reminder.ListOptions{}) {
		if rec.DueDate == "" {
			continue
		}
		if rec.DueDate <= today {
			due = append(due, rec)
		}
	}
	return due
}

// dailySpec converts an "HH:MM" wall-clock time to a cron expression.
func dailySpec(at string) (string, error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return "", fmt.Errorf("invalid time %q, want HH:MM: %w", at, err)
	}
	return fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), nil
}
