// Package services contains the domain API facades of the classtrack
// client. Each operation maps to exactly one endpoint of the remote server;
// no operation depends on the result of a prior call. All cross-call state
// (the token) lives in the token store, not here.
package services

import (
	"context"
	"errors"
	"fmt"

	"classtrack/internal/client/api"
	"classtrack/internal/client/models"
	"classtrack/internal/client/token"
)

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - Login / Register: authenticate against the server; the returned token
//     is stored for subsequent requests.
//   - CurrentUser: fetch the account behind the stored token.
//   - UpdateProfile: change profile fields, returning the refreshed user.
//   - Logout: drop the stored token. Never triggers navigation; the forced
//     return to the login view is reserved for rejected credentials.
//
// Failures are normalized into errors whose message is the server-provided
// "error" field when present, or a fixed per-operation fallback otherwise.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	api    *api.Client
	tokens token.Store
}

// NewAuthService constructs an AuthService over the auth endpoint client
// (base path /api/auth) and the shared token store.
func NewAuthService(client *api.Client, tokens token.Store) AuthService {
	return &authService{api: client, tokens: tokens}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.api.Post(ctx, "/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, normalized(err, "Login failed")
	}
	if resp.Token != "" {
		if err := a.tokens.Set(resp.Token); err != nil {
			return nil, fmt.Errorf("persist token: %w", err)
		}
	}
	return &resp, nil
}

func (a *authService) Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	req := registerRequest{Email: email, Password: password, Name: name}
	if err := a.api.Post(ctx, "/register", req, &resp); err != nil {
		return nil, normalized(err, "Registration failed")
	}
	// The server may or may not log the new account in; store a token only
	// when one was issued.
	if resp.Token != "" {
		if err := a.tokens.Set(resp.Token); err != nil {
			return nil, fmt.Errorf("persist token: %w", err)
		}
	}
	return &resp, nil
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := a.api.Get(ctx, "/profile", nil, &user); err != nil {
		return nil, normalized(err, "Failed to get user data")
	}
	return &user, nil
}

func (a *authService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := a.api.Put(ctx, "/profile", update, &user); err != nil {
		return nil, normalized(err, "Profile update failed")
	}
	return &user, nil
}

func (a *authService) Logout(_ context.Context) error {
	return a.tokens.Clear()
}

// normalized converts any transport or server error into one carrying a
// human-readable message: the server's own message when the body had one,
// the operation's fallback string otherwise.
func normalized(err error, fallback string) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return errors.New(apiErr.Message)
	}
	return errors.New(fallback)
}
