// Command generate_demo creates a demo database with a sample account and
// events, including the auto-created birthday event.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/mrlokans/eventbook/internal/auth"
	"github.com/mrlokans/eventbook/internal/database"
	"github.com/mrlokans/eventbook/internal/entities"
	"github.com/mrlokans/eventbook/internal/onboarding"
	"github.com/mrlokans/eventbook/internal/prefs"
	"github.com/mrlokans/eventbook/internal/repository"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	authService := auth.NewService(repo)

	err = authService.Register(auth.RegisterInput{
		Name:     "Demo User",
		Birthday: "June 15, 1992",
		Phone:    "555-0100",
		Email:    "demo@example.com",
		Password: "demo-password",
	})
	if err != nil {
		log.Fatalf("Failed to register demo user: %v", err)
	}

	session, err := authService.Login("demo@example.com", "demo-password")
	if err != nil {
		log.Fatalf("Failed to log demo user in: %v", err)
	}
	log.Printf("Registered %s (user %d)", session.FirstName, session.UserID)

	// Run the first-login flow so the demo database carries the birthday
	// event and a cleared first-login flag.
	onboardingService := onboarding.NewService(db, prefs.New(db))
	result, err := onboardingService.CompleteFirstLogin(session.UserID, session.FirstName, session.Birthday, time.Now())
	if err != nil {
		log.Fatalf("Failed to complete first login: %v", err)
	}
	if result.BirthdayEvent != nil {
		log.Printf("Created birthday event %q on %s", result.BirthdayEvent.Title, result.BirthdayEvent.Date)
	}

	for _, event := range demoEvents(session.UserID) {
		if err := <-repo.InsertEvent(event); err != nil {
			log.Printf("Failed to save event %q: %v", event.Title, err)
			continue
		}
		log.Printf("Saved: %s on %s", event.Title, event.Date)
	}

	events, err := repo.EventsForUser(session.UserID)
	if err != nil {
		log.Fatalf("Failed to list events: %v", err)
	}
	log.Printf("Demo database ready: %d events for user %d", len(events), session.UserID)
}

func demoEvents(userID int) []*entities.Event {
	return []*entities.Event{
		{
			Title:       "Dentist appointment",
			Date:        "March 03, 2026",
			Description: "Bring insurance card",
			UserID:      userID,
		},
		{
			Title:       "Team offsite",
			Date:        "April 21, 2026",
			Description: "Downtown office",
			UserID:      userID,
		},
		{
			Title:       "Car inspection",
			Date:        "September 12, 2026",
			Description: "",
			UserID:      userID,
		},
	}
}
