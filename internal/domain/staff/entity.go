package staff

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("staff name is required")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrSelfDeletion    = errors.New("staff cannot delete themselves")
	ErrMissingPassword = errors.New("password hash is required")
)

type Staff struct {
	id           uuid.UUID
	name         string
	email        string
	passwordHash string
	isAdmin      bool
}

func NewStaff(name, email, passwordHash string, isAdmin bool) (*Staff, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if name == "" {
		return nil, ErrEmptyName
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if passwordHash == "" {
		return nil, ErrMissingPassword
	}

	return &Staff{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		isAdmin:      isAdmin,
	}, nil
}

func ReconstructStaff(id uuid.UUID, name, email, passwordHash string, isAdmin bool) *Staff {
	return &Staff{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		isAdmin:      isAdmin,
	}
}

// EnsureDeletableBy guards admin staff removal against self-deletion, which
// would otherwise let the last admin lock everyone out.
func (s *Staff) EnsureDeletableBy(actorID uuid.UUID) error {
	if s.id == actorID {
		return ErrSelfDeletion
	}
	return nil
}

func (s *Staff) ID() uuid.UUID        { return s.id }
func (s *Staff) Name() string         { return s.name }
func (s *Staff) Email() string        { return s.email }
func (s *Staff) PasswordHash() string { return s.passwordHash }
func (s *Staff) IsAdmin() bool        { return s.isAdmin }
