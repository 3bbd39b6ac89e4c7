// Package users provides database operations for user accounts.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.FindByEmail("a@b.com")
package users

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/eventbook/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert stores a new user and assigns its ID. A negative ID is the
// caller-side "not yet persisted" sentinel and is cleared so the storage
// engine picks the key.
func (r *Repository) Insert(user *entities.User) error {
	if user.ID < 0 {
		user.ID = 0
	}
	return r.db.Create(user).Error
}

// FindByEmail returns the user with the given email, or nil when no such
// user exists. Email uniqueness is not enforced by a constraint; if
// duplicates ever exist the first row wins.
func (r *Repository) FindByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmailAndPassword returns the user matching both credentials
// exactly (case-sensitive), or nil on any mismatch.
func (r *Repository) FindByEmailAndPassword(email, password string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ? AND password = ?", email, password).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListAll returns every user ordered by ID descending (newest first).
func (r *Repository) ListAll() ([]entities.User, error) {
	var list []entities.User
	err := r.db.Order("id DESC").Find(&list).Error
	return list, err
}
