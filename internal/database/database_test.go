package database

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_database_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestNewDatabase_CreatesSchema(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	for _, table := range []string{"users", "events", "settings"} {
		assert.True(t, db.DB.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestSetSetting_CreateAndUpdate(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.SetSetting("some_key", "one"))

	setting, err := db.GetSetting("some_key")
	require.NoError(t, err)
	assert.Equal(t, "one", setting.Value)

	require.NoError(t, db.SetSetting("some_key", "two"))

	setting, err = db.GetSetting("some_key")
	require.NoError(t, err)
	assert.Equal(t, "two", setting.Value)
}

func TestGetSetting_Missing(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := db.GetSetting("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteSetting(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.SetSetting("some_key", "value"))
	require.NoError(t, db.DeleteSetting("some_key"))

	_, err := db.GetSetting("some_key")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleting a missing key is not an error.
	assert.NoError(t, db.DeleteSetting("some_key"))
}
