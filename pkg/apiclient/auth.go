package apiclient

import (
	"context"

	"github.com/fundiconnect/fundictl/pkg/marketplace"
)

// Session is the authenticated session returned by login and registration.
type Session struct {
	Token string           `json:"token"`
	User  marketplace.User `json:"user"`
}

// RegisterRequest creates a new platform account. An account may register
// as customer, fundi, or both.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Password   string `json:"password"`
	IsCustomer bool   `json:"isCustomer,omitempty"`
	IsFundi    bool   `json:"isFundi,omitempty"`
}

// Login exchanges credentials for a session token. The token is also
// installed on the client for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var session Session
	if err := c.post(ctx, "/auth/login", body, &session); err != nil {
		return nil, err
	}
	c.SetToken(session.Token)
	return &session, nil
}

// Register creates an account and returns the fresh session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	var session Session
	if err := c.post(ctx, "/auth/register", req, &session); err != nil {
		return nil, err
	}
	c.SetToken(session.Token)
	return &session, nil
}

// GetProfile fetches the current user's profile, including the fundi
// service offerings the eligibility evaluator consumes.
func (c *Client) GetProfile(ctx context.Context) (*marketplace.User, error) {
	var user marketplace.User
	if err := c.get(ctx, "/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
