// Package scheduler drives the periodic reminder sweep.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/eventbook/internal/dates"
	"github.com/mrlokans/eventbook/internal/entities"
	"github.com/mrlokans/eventbook/internal/prefs"
	"github.com/mrlokans/eventbook/internal/repository"
	"github.com/mrlokans/eventbook/internal/tasks"
)

// ReminderScheduler periodically scans for events inside the look-ahead
// window and queues an SMS reminder task for each, as long as the SMS
// preference is enabled.
type ReminderScheduler struct {
	repo       *repository.Repository
	prefs      *prefs.Store
	tasks      *tasks.Client
	schedule   string
	windowDays int

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	isSweeping bool
	cancelFunc context.CancelFunc

	now func() time.Time
}

// NewReminderScheduler creates a scheduler with the given cron schedule and
// look-ahead window in days.
func NewReminderScheduler(repo *repository.Repository, prefsStore *prefs.Store, taskClient *tasks.Client, schedule string, windowDays int) *ReminderScheduler {
	return &ReminderScheduler{
		repo:       repo,
		prefs:      prefsStore,
		tasks:      taskClient,
		schedule:   schedule,
		windowDays: windowDays,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
		now:        time.Now,
	}
}

// Start begins the scheduler. Safe to call once; a second call is a no-op.
func (s *ReminderScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runSweep()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminder sweep '%s': %w", s.schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Reminder scheduler: started with schedule '%s', %d day window", s.schedule, s.windowDays)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running sweep.
func (s *ReminderScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Reminder scheduler: stopped")
}

// RunNow triggers an immediate sweep.
func (s *ReminderScheduler) RunNow() {
	go s.runSweep()
}

// IsRunning returns whether the scheduler is active.
func (s *ReminderScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next sweep will occur, nil when stopped.
func (s *ReminderScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *ReminderScheduler) runSweep() {
	s.mu.Lock()
	if s.isSweeping {
		s.mu.Unlock()
		log.Printf("Reminder sweep: skipped (already running)")
		return
	}
	s.isSweeping = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isSweeping = false
		s.mu.Unlock()
	}()

	if !s.prefs.SMSNotificationsEnabled() {
		log.Printf("Reminder sweep: skipped (SMS notifications disabled)")
		return
	}

	users, err := s.repo.AllUsers()
	if err != nil {
		log.Printf("Reminder sweep: failed to list users: %v", err)
		return
	}
	phones := make(map[int]string, len(users))
	for _, u := range users {
		phones[u.ID] = u.Phone
	}

	events, err := s.repo.AllEvents()
	if err != nil {
		log.Printf("Reminder sweep: failed to list events: %v", err)
		return
	}

	due := DueEvents(events, s.now(), s.windowDays)
	var queued int
	for _, event := range due {
		task := tasks.SendReminderTask{
			EventID: event.ID,
			Title:   event.Title,
			Date:    event.Date,
			Phone:   phones[event.UserID],
		}
		if _, err := s.tasks.Add(task).Save(); err != nil {
			log.Printf("Reminder sweep: failed to queue reminder for event %d: %v", event.ID, err)
			continue
		}
		queued++
	}

	log.Printf("Reminder sweep: queued %d of %d due events", queued, len(due))
}

// DueEvents filters events to those dated from now's day through windowDays
// ahead. Events whose date string does not parse never produce reminders.
func DueEvents(events []entities.Event, now time.Time, windowDays int) []entities.Event {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	cutoff := start.AddDate(0, 0, windowDays)

	var due []entities.Event
	for _, event := range events {
		when, err := dates.Parse(event.Date)
		if err != nil {
			continue
		}
		when = time.Date(when.Year(), when.Month(), when.Day(), 0, 0, 0, 0, now.Location())
		if when.Before(start) || when.After(cutoff) {
			continue
		}
		due = append(due, event)
	}
	return due
}
