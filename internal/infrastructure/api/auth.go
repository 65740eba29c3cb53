package api

import (
	"context"
	"net/http"

	"eventsphere/internal/domain/entities"
	"eventsphere/internal/ports/output"
)

var _ output.AuthClient = (*AuthClient)(nil)

// AuthClient implements output.AuthClient against /auth and /contact.
type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

func (a *AuthClient) Login(ctx context.Context, email, password string) (*entities.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var payload authDTO
	if err := a.client.do(ctx, http.MethodPost, "/auth/login", nil, body, &payload); err != nil {
		return nil, asFetchFailed(err)
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}
	return sessionFromAuth(payload), nil
}

func (a *AuthClient) Signup(ctx context.Context, name, email, password string) (*entities.Session, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var payload authDTO
	if err := a.client.do(ctx, http.MethodPost, "/auth/signup", nil, body, &payload); err != nil {
		return nil, asFetchFailed(err)
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}
	return sessionFromAuth(payload), nil
}

func (a *AuthClient) Verify(ctx context.Context) (*entities.User, error) {
	var payload userDTO
	if err := a.client.do(ctx, http.MethodGet, "/auth/verify", nil, nil, &payload); err != nil {
		return nil, asFetchFailed(err)
	}
	return &entities.User{ID: payload.ID, Name: payload.Name, Email: payload.Email}, nil
}

func (a *AuthClient) SendContact(ctx context.Context, msg output.ContactMessage) error {
	body := map[string]string{"name": msg.Name, "email": msg.Email, "message": msg.Message}
	if err := a.client.do(ctx, http.MethodPost, "/contact", nil, body, nil); err != nil {
		return asFetchFailed(err)
	}
	return nil
}

func sessionFromAuth(payload authDTO) *entities.Session {
	return &entities.Session{
		Token: payload.Token,
		User: entities.User{
			ID:    payload.User.ID,
			Name:  payload.User.Name,
			Email: payload.User.Email,
		},
	}
}
