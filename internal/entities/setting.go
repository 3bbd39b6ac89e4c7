package entities

import (
	"time"
)

type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	// SettingKeySMSNotifications stores the global SMS reminder preference.
	SettingKeySMSNotifications = "sms_notifications"

	// SettingKeyFirstLoginPrefix is the prefix of the per-user first-login
	// flag; the user ID is appended, e.g. "isFirstLogin_42".
	SettingKeyFirstLoginPrefix = "isFirstLogin_"
)
