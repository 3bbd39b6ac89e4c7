// Package auth implements registration and login on top of the repository
// façade. Validation happens here; nothing below this layer re-checks
// field shape.
package auth

import (
	"errors"
	"regexp"
	"strings"

	"github.com/mrlokans/eventbook/internal/entities"
	"github.com/mrlokans/eventbook/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var (
	ErrFieldsRequired   = errors.New("one or more fields is empty")
	ErrEmailInvalid     = errors.New("not a valid email address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrEmailTaken       = errors.New("email already in system")
	ErrInvalidLogin     = errors.New("invalid login")
)

// RegisterInput carries the trimmed field strings collected by the caller.
type RegisterInput struct {
	Name     string
	Birthday string
	Phone    string
	Email    string
	Password string
}

// Session is what a successful login hands back to the caller: enough to
// greet the user and load their events.
type Session struct {
	UserID    int
	FirstName string
	Birthday  string
}

// Service handles account registration and credential checks.
type Service struct {
	repo *repository.Repository
}

func NewService(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

// Register validates the input, rejects an already-registered email, and
// inserts the account. The duplicate check subscribes to the live email
// lookup and cancels after the first emission so later table changes
// cannot re-trigger it; the check is read-before-write, not a storage
// constraint, so two racing registrations of the same email can both
// succeed.
func (s *Service) Register(input RegisterInput) error {
	if err := validate(input); err != nil {
		return err
	}

	sub := s.repo.WatchUserByEmail(input.Email)
	existing := <-sub.C
	sub.Cancel()
	if existing != nil {
		return ErrEmailTaken
	}

	user := &entities.User{
		Name:     input.Name,
		Birthday: input.Birthday,
		Phone:    input.Phone,
		Email:    input.Email,
		Password: input.Password,
	}
	return <-s.repo.InsertUser(user)
}

// Login checks the credentials with an exact, case-sensitive match and
// returns the session for the matching account. Any mismatch, including a
// wrong-case password, yields ErrInvalidLogin.
func (s *Service) Login(email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, ErrFieldsRequired
	}

	user, err := s.repo.User(email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidLogin
	}

	return &Session{
		UserID:    user.ID,
		FirstName: firstName(user.Name),
		Birthday:  user.Birthday,
	}, nil
}

// firstName extracts the first whitespace-delimited token of a full name.
func firstName(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return name
}

func validate(input RegisterInput) error {
	for _, field := range []string{input.Name, input.Birthday, input.Phone, input.Email, input.Password} {
		if strings.TrimSpace(field) == "" {
			return ErrFieldsRequired
		}
	}
	if len(input.Email) > 254 || !emailPattern.MatchString(input.Email) {
		return ErrEmailInvalid
	}
	if len(input.Password) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}
