package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/eventbook/internal/config"
	"github.com/mrlokans/eventbook/internal/database"
	"github.com/mrlokans/eventbook/internal/repository"
)

// ListEventsCommand prints the events stored for one user.
type ListEventsCommand struct {
	UserID       int
	DatabasePath string
}

func NewListEventsCommand() *ListEventsCommand {
	return &ListEventsCommand{}
}

func (cmd *ListEventsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list-events", flag.ExitOnError)

	fs.IntVar(&cmd.UserID, "user", 0, "User ID whose events to list (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list-events -user <id> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List the events stored for a user, in stored date-string order.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.UserID <= 0 {
		return fmt.Errorf("required flag -user not provided")
	}
	return nil
}

func (cmd *ListEventsCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	events, err := repository.New(db).EventsForUser(cmd.UserID)
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	if len(events) == 0 {
		fmt.Printf("No events for user %d\n", cmd.UserID)
		return nil
	}

	for _, event := range events {
		fmt.Printf("%4d  %-18s  %s", event.ID, event.Date, event.Title)
		if event.Description != "" {
			fmt.Printf("  (%s)", event.Description)
		}
		fmt.Println()
	}
	return nil
}
