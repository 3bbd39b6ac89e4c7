// Package repository exposes the single data-access façade consumed by
// application logic. It hides the DAO and storage details, runs writes on a
// background goroutine, and hands out live query subscriptions.
package repository

import (
	"log"

	"github.com/mrlokans/eventbook/internal/database"
	"github.com/mrlokans/eventbook/internal/database/events"
	"github.com/mrlokans/eventbook/internal/database/users"
	"github.com/mrlokans/eventbook/internal/entities"
)

// Repository combines the user and event DAOs behind one API.
type Repository struct {
	db     *database.Database
	users  *users.Repository
	events *events.Repository
}

// New builds the façade over an already-open database handle.
func New(db *database.Database) *Repository {
	return &Repository{
		db:     db,
		users:  users.NewRepository(db.DB),
		events: events.NewRepository(db.DB),
	}
}

// dispatch runs write off the caller's goroutine and reports completion on
// the returned channel. The channel is buffered, so callers that only want
// the original fire-and-forget behavior can drop it; callers that need
// write-before-read ordering receive from it first.
func (r *Repository) dispatch(table database.Table, write func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		err := write()
		if err != nil {
			log.Printf("background write to %s failed: %v", table, err)
		} else {
			r.db.NotifyChanged(table)
		}
		done <- err
	}()
	return done
}

func (r *Repository) InsertUser(user *entities.User) <-chan error {
	return r.dispatch(database.TableUsers, func() error { return r.users.Insert(user) })
}

func (r *Repository) InsertEvent(event *entities.Event) <-chan error {
	return r.dispatch(database.TableEvents, func() error { return r.events.Insert(event) })
}

func (r *Repository) UpdateEvent(event *entities.Event) <-chan error {
	return r.dispatch(database.TableEvents, func() error { return r.events.Update(event) })
}

func (r *Repository) DeleteEvent(event *entities.Event) <-chan error {
	return r.dispatch(database.TableEvents, func() error { return r.events.Delete(event) })
}

// One-shot reads for callers that do not need a live stream.

func (r *Repository) UserByEmail(email string) (*entities.User, error) {
	return r.users.FindByEmail(email)
}

// User returns the account matching both credentials exactly, or nil.
func (r *Repository) User(email, password string) (*entities.User, error) {
	return r.users.FindByEmailAndPassword(email, password)
}

func (r *Repository) AllUsers() ([]entities.User, error) {
	return r.users.ListAll()
}

func (r *Repository) EventsForUser(userID int) ([]entities.Event, error) {
	return r.events.ListForUser(userID)
}

func (r *Repository) AllEvents() ([]entities.Event, error) {
	return r.events.ListAll()
}

// Live reads. Each subscription emits the current result immediately and
// re-emits after every committed write to the underlying table until the
// caller cancels it.

func (r *Repository) WatchEventsForUser(userID int) *database.Subscription[[]entities.Event] {
	return database.Watch(r.db.Notifier(), database.TableEvents, func() ([]entities.Event, error) {
		return r.events.ListForUser(userID)
	})
}

func (r *Repository) WatchUserByEmail(email string) *database.Subscription[*entities.User] {
	return database.Watch(r.db.Notifier(), database.TableUsers, func() (*entities.User, error) {
		return r.users.FindByEmail(email)
	})
}

// WatchUser is the live credential lookup; a nil emission means no account
// matches.
func (r *Repository) WatchUser(email, password string) *database.Subscription[*entities.User] {
	return database.Watch(r.db.Notifier(), database.TableUsers, func() (*entities.User, error) {
		return r.users.FindByEmailAndPassword(email, password)
	})
}
