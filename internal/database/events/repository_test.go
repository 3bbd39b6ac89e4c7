package events

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/eventbook/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_events_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Event{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_Insert_AssignsID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	event := &entities.Event{
		ID:          entities.PendingID,
		Title:       "Dentist",
		Date:        "March 03, 2026",
		Description: "Morning slot",
		UserID:      1,
	}
	require.NoError(t, repo.Insert(event))

	assert.Greater(t, event.ID, 0)
}

func TestRepository_ListForUser_OnlyThatUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Insert(&entities.Event{Title: "Mine", Date: "March 03, 2026", UserID: 1}))
	require.NoError(t, repo.Insert(&entities.Event{Title: "Also mine", Date: "May 07, 2026", UserID: 1}))
	require.NoError(t, repo.Insert(&entities.Event{Title: "Someone else's", Date: "April 01, 2026", UserID: 2}))

	list, err := repo.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, event := range list {
		assert.Equal(t, 1, event.UserID)
	}
}

func TestRepository_ListForUser_LexicographicDateOrder(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// "April ..." sorts before "January ..." as strings even though the
	// January date is six years earlier.
	require.NoError(t, repo.Insert(&entities.Event{Title: "old", Date: "January 01, 2020", UserID: 1}))
	require.NoError(t, repo.Insert(&entities.Event{Title: "new", Date: "April 01, 2026", UserID: 1}))

	list, err := repo.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "April 01, 2026", list[0].Date)
	assert.Equal(t, "January 01, 2020", list[1].Date)
}

func TestRepository_Update_PreservesIDAndOwner(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	event := &entities.Event{Title: "Before", Date: "March 03, 2026", Description: "old", UserID: 1}
	require.NoError(t, repo.Insert(event))
	id := event.ID

	event.Title = "After"
	event.Date = "August 20, 2026"
	event.Description = "new"
	require.NoError(t, repo.Update(event))

	list, err := repo.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, 1, list[0].UserID)
	assert.Equal(t, "After", list[0].Title)
	assert.Equal(t, "August 20, 2026", list[0].Date)
	assert.Equal(t, "new", list[0].Description)
}

func TestRepository_Delete_RemovesExactlyThatRecord(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	keep := &entities.Event{Title: "Keep", Date: "March 03, 2026", UserID: 1}
	drop := &entities.Event{Title: "Drop", Date: "May 07, 2026", UserID: 1}
	require.NoError(t, repo.Insert(keep))
	require.NoError(t, repo.Insert(drop))

	require.NoError(t, repo.Delete(drop))

	list, err := repo.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)
}

func TestRepository_ListAll_AcrossUsers(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Insert(&entities.Event{Title: "a", Date: "February 01, 2026", UserID: 1}))
	require.NoError(t, repo.Insert(&entities.Event{Title: "b", Date: "December 25, 2026", UserID: 2}))

	list, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
