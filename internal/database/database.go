package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/eventbook/internal/entities"
)

// Database is the single storage handle for the process. It is constructed
// once at startup and passed to repositories explicitly; there is no hidden
// global instance.
type Database struct {
	DB *gorm.DB

	notifier *Notifier
}

// NewDatabase opens (or creates) the SQLite database at dbPath and
// establishes the schema for the users, events and settings tables.
// There is no migration strategy: on a schema change GORM alters what it
// can and older data may be lost.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Event{},
		&entities.Setting{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db, notifier: NewNotifier()}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Notifier returns the change-notification hub for live queries.
func (d *Database) Notifier() *Notifier {
	return d.notifier
}

// NotifyChanged signals every live query watching the given table that its
// result set may be stale. Writers call this after a committed write.
func (d *Database) NotifyChanged(table Table) {
	d.notifier.Notify(table)
}
