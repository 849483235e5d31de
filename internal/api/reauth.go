package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/linkobe24/memorycard-go/internal/credentials"
	serverhttp "github.com/linkobe24/memorycard-go/internal/http"
	"github.com/linkobe24/memorycard-go/internal/logger"
)

// refreshKey is the single slot all concurrent refresh attempts share.
const refreshKey = "refresh"

// reauthCoordinator serializes token refreshes. However many requests hit a
// 401 while a refresh is in flight, exactly one POST /api/auth/refresh goes
// out and every waiter receives its outcome. singleflight drops the slot
// before delivering results, so a 401 arriving after the refresh settled
// starts a fresh one instead of reusing a stale outcome.
type reauthCoordinator struct {
	httpClient serverhttp.HTTPClient
	store      credentials.Store
	terminator *SessionTerminator
	baseURL    string
	timeout    time.Duration
	group      singleflight.Group
}

// accessToken returns a freshly refreshed access token, coalescing with any
// refresh already in flight. Cancelling ctx detaches only this waiter; the
// shared refresh keeps running for the others under its own timeout.
func (r *reauthCoordinator) accessToken(ctx context.Context) (string, error) {
	ch := r.group.DoChan(refreshKey, r.refresh)

	select {
	case <-ctx.Done():
		return "", &Error{Kind: KindCancelled, Message: "cancelled while waiting for token refresh"}
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// refresh performs the actual refresh exchange. Any failure here means the
// session cannot be salvaged: credentials are cleared, the navigation hook
// fires, and every waiter gets an auth-expired error.
func (r *reauthCoordinator) refresh() (interface{}, error) {
	creds, err := r.store.Credentials()
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: "failed to read credentials for refresh: " + err.Error()}
	}
	if creds == nil || creds.RefreshToken == "" {
		r.terminator.Terminate()
		return nil, &Error{Kind: KindAuthExpired, Message: "no refresh token available"}
	}

	// The refresh outlives any one caller, so it runs detached from their
	// contexts under its own bounded timeout.
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	body, err := json.Marshal(refreshRequest{RefreshToken: creds.RefreshToken})
	if err != nil {
		return nil, fmt.Errorf("could not marshal refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/auth/refresh", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		logger.Get().Error().Err(err).Msg("Token refresh request failed")
		r.terminator.Terminate()
		return nil, &Error{Kind: KindAuthExpired, Message: "token refresh failed: " + err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		r.terminator.Terminate()
		return nil, &Error{Kind: KindAuthExpired, Message: "token refresh failed: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Get().Warn().Int("status", resp.StatusCode).Msg("Token refresh rejected")
		r.terminator.Terminate()
		return nil, &Error{
			Kind:    KindAuthExpired,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("token refresh failed with status %d", resp.StatusCode),
			Payload: append(json.RawMessage(nil), respBody...),
		}
	}

	var tokens tokenResponse
	if err := json.Unmarshal(respBody, &tokens); err != nil {
		r.terminator.Terminate()
		return nil, &Error{Kind: KindAuthExpired, Message: "could not parse refresh response: " + err.Error()}
	}

	if err := r.store.SaveCredentials(&credentials.Credentials{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}); err != nil {
		// The new token is still usable for this process.
		logger.Get().Warn().Err(err).Msg("Failed to save refreshed credentials")
	}

	logger.Get().Debug().Msg("Access token refreshed")
	return tokens.AccessToken, nil
}
