package prefs

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/eventbook/internal/database"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	dbPath := "./test_prefs_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return New(db), cleanup
}

func TestFirstLoginKey(t *testing.T) {
	assert.Equal(t, "isFirstLogin_42", FirstLoginKey(42))
}

func TestIsFirstLogin_DefaultsTrueForUnseenUser(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.True(t, store.IsFirstLogin(1))
}

func TestIsFirstLogin_PerUser(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	require.NoError(t, store.SetFirstLogin(1, false))

	assert.False(t, store.IsFirstLogin(1))
	assert.True(t, store.IsFirstLogin(2))
}

func TestSMSNotifications_DefaultFalse(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	originalEnv := os.Getenv("SMS_NOTIFICATIONS")
	os.Unsetenv("SMS_NOTIFICATIONS")
	defer os.Setenv("SMS_NOTIFICATIONS", originalEnv)

	assert.False(t, store.SMSNotificationsEnabled())
}

func TestSMSNotifications_SetAndRead(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	require.NoError(t, store.SetSMSNotifications(true))
	assert.True(t, store.SMSNotificationsEnabled())

	require.NoError(t, store.SetSMSNotifications(false))
	assert.False(t, store.SMSNotificationsEnabled())
}

func TestSMSNotifications_EnvFallback(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	originalEnv := os.Getenv("SMS_NOTIFICATIONS")
	os.Setenv("SMS_NOTIFICATIONS", "true")
	defer os.Setenv("SMS_NOTIFICATIONS", originalEnv)

	// Environment applies only while the database has no value.
	assert.True(t, store.SMSNotificationsEnabled())

	require.NoError(t, store.SetSMSNotifications(false))
	assert.False(t, store.SMSNotificationsEnabled())
}
