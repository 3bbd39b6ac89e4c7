// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── settings.go      # Key-value settings rows (used by prefs)
//	├── watch.go         # Change notifier and live-query subscriptions
//	├── users/           # User queries
//	└── events/          # Event CRUD and per-user listings
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific
// operations:
//
//	db, err := database.NewDatabase("./app.db")
//
//	usersRepo := users.NewRepository(db.DB)
//	eventsRepo := events.NewRepository(db.DB)
//
// Application logic should not use these directly; the repository package
// combines them behind one façade and wires writes to the change notifier
// so live queries stay current.
package database
