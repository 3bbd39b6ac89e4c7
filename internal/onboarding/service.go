// Package onboarding runs the one-time first-login flow: the automatic
// birthday event and the SMS-notification prompt decision.
package onboarding

import (
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/eventbook/internal/database"
	"github.com/mrlokans/eventbook/internal/database/events"
	"github.com/mrlokans/eventbook/internal/dates"
	"github.com/mrlokans/eventbook/internal/entities"
	"github.com/mrlokans/eventbook/internal/prefs"
)

// Service owns the per-user first-login flag and its side effects.
type Service struct {
	db    *database.Database
	prefs *prefs.Store
}

func NewService(db *database.Database, prefsStore *prefs.Store) *Service {
	return &Service{db: db, prefs: prefsStore}
}

// FirstLoginResult reports what the flow did. PromptSMS tells the caller to
// show the SMS-notification prompt (the prompt itself is presentation);
// BirthdayEvent is the event that was created, nil on repeat logins.
type FirstLoginResult struct {
	PromptSMS     bool
	BirthdayEvent *entities.Event
}

// CompleteFirstLogin checks the first-login flag for userID and, when the
// flag is still set, creates the birthday event and clears the flag. The
// flag check, the event insert and the flag update run in one transaction,
// so a crash mid-flow cannot leave the flag set with the event already
// created (and a later retry cannot produce a duplicate).
func (s *Service) CompleteFirstLogin(userID int, firstName, birthday string, now time.Time) (*FirstLoginResult, error) {
	result := &FirstLoginResult{}

	err := s.db.DB.Transaction(func(tx *gorm.DB) error {
		key := prefs.FirstLoginKey(userID)

		setting, err := database.GetSetting(tx, key)
		switch {
		case err == nil:
			if first, parseErr := strconv.ParseBool(setting.Value); parseErr == nil && !first {
				return nil // already onboarded
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		event := &entities.Event{
			Title:       firstName + "'s Birthday",
			Date:        dates.NextOccurrence(birthday, now),
			Description: "Celebrate Myself!",
			UserID:      userID,
		}
		if err := events.NewRepository(tx).Insert(event); err != nil {
			return err
		}
		if err := database.SetSetting(tx, key, "false"); err != nil {
			return err
		}

		result.PromptSMS = true
		result.BirthdayEvent = event
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.BirthdayEvent != nil {
		s.db.NotifyChanged(database.TableEvents)
	}
	return result, nil
}

// RecordSMSPromptResponse persists the user's answer to the SMS prompt.
func (s *Service) RecordSMSPromptResponse(enabled bool) error {
	return s.prefs.SetSMSNotifications(enabled)
}
