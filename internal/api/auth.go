package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/linkobe24/memorycard-go/internal/credentials"
	"github.com/linkobe24/memorycard-go/internal/logger"
)

// Login authenticates with email and password and stores the returned
// token pair. The call carries no bearer token and is never retried.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var tokens tokenResponse
	err := c.doUnauthenticated(ctx, http.MethodPost, "/api/auth/login", loginRequest{
		Email:    email,
		Password: password,
	}, &tokens)
	if err != nil {
		return err
	}
	return c.saveTokens(&tokens)
}

// Register creates a new account and stores the token pair the backend
// issues for it.
func (c *Client) Register(ctx context.Context, email, password, fullName string) error {
	var tokens tokenResponse
	err := c.doUnauthenticated(ctx, http.MethodPost, "/api/auth/register", registerRequest{
		Email:    email,
		Password: password,
		FullName: fullName,
	}, &tokens)
	if err != nil {
		return err
	}
	return c.saveTokens(&tokens)
}

// Me fetches the authenticated user's profile and caches it as the stored
// identity.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}

	identity := &credentials.Identity{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}
	if err := c.store.SaveIdentity(identity); err != nil {
		// The profile itself is still good.
		logger.Get().Warn().Err(err).Msg("Failed to cache identity")
	}

	return &user, nil
}

// Identity returns the cached identity record, or (nil, nil) when none is
// cached. It never performs a network call; use Me to refresh the cache.
func (c *Client) Identity() (*credentials.Identity, error) {
	return c.store.Identity()
}

// Logout ends the session locally: credentials and cached identity are
// cleared and the navigation hook fires. The backend keeps no session
// state, so no request is made.
func (c *Client) Logout() {
	c.terminator.Terminate()
}

func (c *Client) saveTokens(tokens *tokenResponse) error {
	err := c.store.SaveCredentials(&credentials.Credentials{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
	if err != nil {
		return fmt.Errorf("could not save credentials: %w", err)
	}
	return nil
}
