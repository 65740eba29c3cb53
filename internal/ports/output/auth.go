package output

import (
	"context"

	"eventsphere/internal/domain/entities"
)

type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// AuthClient talks to the authentication endpoints.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*entities.Session, error)
	Signup(ctx context.Context, name, email, password string) (*entities.Session, error)
	Verify(ctx context.Context) (*entities.User, error)
	SendContact(ctx context.Context, msg ContactMessage) error
}

// SessionStore persists the session between invocations (the web client's
// localStorage analog). Load returns (nil, nil) when no session exists.
type SessionStore interface {
	Load() (*entities.Session, error)
	Save(session *entities.Session) error
	Clear() error
}
