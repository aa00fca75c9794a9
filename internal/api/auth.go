package api

import (
	"context"
	"fmt"

	"github.com/activehq/activehq-go/internal/domain/auth"
	"github.com/activehq/activehq-go/internal/domain/model"
)

// AuthService signs users in and out and manages staff accounts.
type AuthService struct {
	client *Client
}

// SignIn authenticates, pulls the user and gym profiles with the fresh
// tokens, and populates the session store in one atomic Login. The returned
// snapshot is the session as persisted.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	var tokens auth.TokenResponse
	if err := s.client.post(ctx, "/auth/login", auth.LoginRequest{Email: email, Password: password}, &tokens); err != nil {
		return auth.Session{}, err
	}

	// Tokens go into the store first so the profile fetches below are
	// authenticated; Authenticated stays false until Login completes.
	s.client.session.SetTokens(ctx, tokens.AccessToken, tokens.RefreshToken)

	user, err := s.Me(ctx)
	if err != nil {
		return auth.Session{}, fmt.Errorf("fetch user profile: %w", err)
	}
	gym, err := s.client.Gym.Current(ctx)
	if err != nil {
		return auth.Session{}, fmt.Errorf("fetch gym profile: %w", err)
	}

	// SetTokens above may have been superseded by a refresh during the
	// profile fetches; keep whatever pair the store holds now.
	current := s.client.session.Snapshot()
	s.client.session.Login(ctx, user, gym, current.AccessToken, current.RefreshToken)
	return s.client.session.Snapshot(), nil
}

// SignOut clears the session. The API keeps no server-side session to
// invalidate; discarding the tokens is the whole operation.
func (s *AuthService) SignOut(ctx context.Context) {
	s.client.session.Logout(ctx)
}

// Register signs up a new gym plus owner account and signs the session in.
func (s *AuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	var resp auth.RegisterResponse
	if err := s.client.post(ctx, "/auth/register", req, &resp); err != nil {
		return auth.RegisterResponse{}, err
	}

	s.client.session.SetTokens(ctx, resp.Tokens.AccessToken, resp.Tokens.RefreshToken)
	gym, err := s.client.Gym.Current(ctx)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("fetch gym profile: %w", err)
	}

	user := resp.User
	current := s.client.session.Snapshot()
	s.client.session.Login(ctx, &user, gym, current.AccessToken, current.RefreshToken)
	return resp, nil
}

// Me returns the calling user's profile.
func (s *AuthService) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := s.client.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword rotates the calling user's password.
func (s *AuthService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	req := model.ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	}
	return s.client.put(ctx, "/auth/me/password", req, nil)
}

// Users lists the gym's staff accounts.
func (s *AuthService) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.client.get(ctx, "/auth/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser adds a staff account to the current gym.
func (s *AuthService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	var user model.User
	if err := s.client.post(ctx, "/auth/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
