package auth

// Package auth contains domain-level types for the client-held session.
// It is pure and free of transport/adapter concerns.

import "github.com/activehq/activehq-go/internal/domain/model"

// Session is the client-held record of who is signed in and with what
// credentials. User and Gym have a lifecycle independent of the token pair:
// a token refresh never re-fetches them.
type Session struct {
	User          *model.User `json:"user"`
	Gym           *model.Gym  `json:"gym"`
	AccessToken   string      `json:"access_token"`
	RefreshToken  string      `json:"refresh_token"`
	Authenticated bool        `json:"is_authenticated"`
}

// Valid reports whether the session satisfies its one invariant:
// an authenticated session always carries an access token.
func (s Session) Valid() bool {
	return !s.Authenticated || s.AccessToken != ""
}

// TokenResponse is the wire shape of /auth/login and /auth/refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// LoginRequest authenticates a staff account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest exchanges a refresh token for a new token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RegisterRequest signs up a new gym together with its owner account.
type RegisterRequest struct {
	GymName       string `json:"gym_name"`
	GymEmail      string `json:"gym_email"`
	GymPhone      string `json:"gym_phone"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	OwnerName     string `json:"owner_name"`
	OwnerEmail    string `json:"owner_email"`
	OwnerPassword string `json:"owner_password"`
}

// RegisterResponse is returned by /auth/register.
type RegisterResponse struct {
	GymID   string        `json:"gym_id"`
	GymName string        `json:"gym_name"`
	User    model.User    `json:"user"`
	Tokens  TokenResponse `json:"tokens"`
}
