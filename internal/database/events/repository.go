// Package events provides database operations for event records.
package events

import (
	"gorm.io/gorm"

	"github.com/mrlokans/eventbook/internal/entities"
)

// Repository handles all event database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new events repository. Pass a transaction handle
// to run the operations inside that transaction.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert stores a new event and assigns its ID. A negative ID is the
// caller-side "not yet persisted" sentinel and is cleared first.
func (r *Repository) Insert(event *entities.Event) error {
	if event.ID < 0 {
		event.ID = 0
	}
	return r.db.Create(event).Error
}

// Update replaces the stored event matched by ID.
func (r *Repository) Update(event *entities.Event) error {
	return r.db.Save(event).Error
}

// Delete removes the event matched by ID.
func (r *Repository) Delete(event *entities.Event) error {
	return r.db.Delete(&entities.Event{}, event.ID).Error
}

// ListForUser returns the events owned by userID. Ordering is ascending on
// the stored date string, which is lexicographic rather than calendar
// order ("April 01, 2026" sorts before "January 01, 2020").
func (r *Repository) ListForUser(userID int) ([]entities.Event, error) {
	var list []entities.Event
	err := r.db.Where(`"user id" = ?`, userID).Order("date ASC").Find(&list).Error
	return list, err
}

// ListAll returns every event, with the same date-string ordering as
// ListForUser.
func (r *Repository) ListAll() ([]entities.Event, error) {
	var list []entities.Event
	err := r.db.Order("date ASC").Find(&list).Error
	return list, err
}
