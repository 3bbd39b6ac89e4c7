package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/eventbook/internal/entities"
)

func TestDueEvents(t *testing.T) {
	now := time.Date(2026, time.March, 1, 15, 30, 0, 0, time.UTC)

	events := []entities.Event{
		{ID: 1, Title: "Today", Date: "March 01, 2026"},
		{ID: 2, Title: "In window", Date: "March 05, 2026"},
		{ID: 3, Title: "Window edge", Date: "March 08, 2026"},
		{ID: 4, Title: "Past window", Date: "March 09, 2026"},
		{ID: 5, Title: "Yesterday", Date: "February 28, 2026"},
		{ID: 6, Title: "Garbage date", Date: "sometime soon"},
	}

	due := DueEvents(events, now, 7)

	var ids []int
	for _, e := range due {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestDueEvents_ZeroWindowIsTodayOnly(t *testing.T) {
	now := time.Date(2026, time.March, 1, 23, 59, 0, 0, time.UTC)

	events := []entities.Event{
		{ID: 1, Date: "March 01, 2026"},
		{ID: 2, Date: "March 02, 2026"},
	}

	due := DueEvents(events, now, 0)
	assert.Len(t, due, 1)
	assert.Equal(t, 1, due[0].ID)
}

func TestDueEvents_Empty(t *testing.T) {
	assert.Empty(t, DueEvents(nil, time.Now(), 7))
}
