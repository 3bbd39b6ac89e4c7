package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/eventbook/internal/auth"
	"github.com/mrlokans/eventbook/internal/config"
	"github.com/mrlokans/eventbook/internal/database"
	"github.com/mrlokans/eventbook/internal/dates"
	"github.com/mrlokans/eventbook/internal/repository"
)

// AddUserCommand registers a user account from the command line.
type AddUserCommand struct {
	Name         string
	Birthday     string
	Phone        string
	Email        string
	Password     string
	DatabasePath string
}

func NewAddUserCommand() *AddUserCommand {
	return &AddUserCommand{}
}

func (cmd *AddUserCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add-user", flag.ExitOnError)

	fs.StringVar(&cmd.Name, "name", "", "Full name (required)")
	fs.StringVar(&cmd.Birthday, "birthday", "", fmt.Sprintf("Birthday in %q form, e.g. %q (required)", dates.Layout, "January 05, 1990"))
	fs.StringVar(&cmd.Phone, "phone", "", "Phone number (required)")
	fs.StringVar(&cmd.Email, "email", "", "Email address (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password, at least 6 characters (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add-user -name <name> -birthday <date> -phone <phone> -email <email> -password <password> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Register a user account in the local database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *AddUserCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	service := auth.NewService(repository.New(db))

	err = service.Register(auth.RegisterInput{
		Name:     cmd.Name,
		Birthday: cmd.Birthday,
		Phone:    cmd.Phone,
		Email:    cmd.Email,
		Password: cmd.Password,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Registered %s (%s)\n", cmd.Name, cmd.Email)
	return nil
}
