// Package prefs is the key-value preference store backing the first-login
// flags and the SMS-notification toggle.
package prefs

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mrlokans/eventbook/internal/database"
	"github.com/mrlokans/eventbook/internal/entities"
)

// Priority: database > environment > default
type Store struct {
	db *database.Database
}

func New(db *database.Database) *Store {
	return &Store{db: db}
}

// FirstLoginKey returns the per-user setting key gating one-time onboarding
// actions (SMS prompt, birthday event).
func FirstLoginKey(userID int) string {
	return fmt.Sprintf("%s%d", entities.SettingKeyFirstLoginPrefix, userID)
}

// IsFirstLogin reports whether userID has never completed a login cycle.
// Unseen users default to true.
func (s *Store) IsFirstLogin(userID int) bool {
	setting, err := s.db.GetSetting(FirstLoginKey(userID))
	if err != nil || setting.Value == "" {
		return true
	}
	value, err := strconv.ParseBool(setting.Value)
	if err != nil {
		return true
	}
	return value
}

func (s *Store) SetFirstLogin(userID int, value bool) error {
	return s.db.SetSetting(FirstLoginKey(userID), strconv.FormatBool(value))
}

// SMSNotificationsEnabled reports the SMS reminder preference. Falls back
// to the SMS_NOTIFICATIONS environment variable, then to false.
func (s *Store) SMSNotificationsEnabled() bool {
	setting, err := s.db.GetSetting(entities.SettingKeySMSNotifications)
	if err == nil && setting.Value != "" {
		if value, parseErr := strconv.ParseBool(setting.Value); parseErr == nil {
			return value
		}
	}

	if env := os.Getenv("SMS_NOTIFICATIONS"); env != "" {
		if value, parseErr := strconv.ParseBool(env); parseErr == nil {
			return value
		}
	}

	return false
}

func (s *Store) SetSMSNotifications(enabled bool) error {
	return s.db.SetSetting(entities.SettingKeySMSNotifications, strconv.FormatBool(enabled))
}
