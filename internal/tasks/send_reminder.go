package tasks

import (
	"context"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// SendReminderTask delivers an SMS reminder for one upcoming event. No SMS
// gateway is wired up; the stored preference only gates whether reminders
// are queued, and delivery is a log line a gateway integration would
// replace.
type SendReminderTask struct {
	EventID int    `json:"event_id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Phone   string `json:"phone"`
}

// Config returns the queue configuration for reminder tasks.
func (t SendReminderTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "send_reminder",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// SendReminderProcessor creates the processor function for reminder tasks.
func SendReminderProcessor() backlite.QueueProcessor[SendReminderTask] {
	return func(ctx context.Context, task SendReminderTask) error {
		log.Printf("[TASK] SMS reminder to %s: %q on %s (event %d)",
			task.Phone, task.Title, task.Date, task.EventID)
		return nil
	}
}

// NewSendReminderQueue creates the backlite queue for reminder tasks.
func NewSendReminderQueue() backlite.Queue {
	return backlite.NewQueue(SendReminderProcessor())
}
