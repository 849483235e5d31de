package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/linkobe24/memorycard-go/internal/config"
	"github.com/linkobe24/memorycard-go/internal/credentials"
	serverhttp "github.com/linkobe24/memorycard-go/internal/http"
	"github.com/linkobe24/memorycard-go/internal/logger"
)

const userAgent = "memorycard-go/1.0"

// Client is a client for the MemoryCard e-commerce API. Every operation
// goes through one pipeline: attach the bearer token, issue the request,
// refresh and retry once on a 401, and map anything left over to an *Error.
type Client struct {
	baseURL    string
	httpClient serverhttp.HTTPClient
	store      credentials.Store
	terminator *SessionTerminator
	reauth     *reauthCoordinator
}

// NewClient creates a new API client over the given credential store. The
// navigation hook fires whenever the session is terminated; nil is allowed.
func NewClient(cfg *config.Config, store credentials.Store, navigate NavigationHook) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	httpClient := serverhttp.NewHTTPClient(cfg.RequestTimeout)
	terminator := NewSessionTerminator(store, navigate)

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		store:      store,
		terminator: terminator,
		reauth: &reauthCoordinator{
			httpClient: httpClient,
			store:      store,
			terminator: terminator,
			baseURL:    baseURL,
			timeout:    cfg.RefreshTimeout,
		},
	}
}

// do issues an authenticated request. A 401 triggers one token refresh and
// one retry of the exact same request; a second 401 is mapped, never
// retried again.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	return c.exchange(ctx, method, path, body, out, true)
}

// doUnauthenticated issues a request with no bearer token and no refresh
// retry. Login and register use it: a 401 there means bad credentials, not
// an expired session.
func (c *Client) doUnauthenticated(ctx context.Context, method, path string, body, out interface{}) error {
	return c.exchange(ctx, method, path, body, out, false)
}

func (c *Client) exchange(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not marshal request body: %w", err)
		}
	}

	var token string
	if authed {
		creds, err := c.store.Credentials()
		if err != nil {
			return fmt.Errorf("could not read credentials: %w", err)
		}
		if creds != nil {
			token = creds.AccessToken
		}
	}

	status, respBody, err := c.send(ctx, method, path, payload, token)
	if err != nil {
		return transportError(err)
	}

	if authed && status == http.StatusUnauthorized {
		refreshed, err := c.reauth.accessToken(ctx)
		if err != nil {
			return err
		}

		// Retry the request with the new token
		status, respBody, err = c.send(ctx, method, path, payload, refreshed)
		if err != nil {
			return transportError(err)
		}
	}

	if status < 200 || status > 299 {
		apiErr := mapStatus(status, respBody)
		if authed && apiErr.Kind == KindAuthExpired {
			// Still unauthorized after the refreshed retry: the session is gone.
			c.terminator.Terminate()
		}
		return apiErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("could not unmarshal response body: %w", err)
	}
	return nil
}

// send performs a single HTTP exchange and returns the status and body.
func (c *Client) send(ctx context.Context, method, path string, payload []byte, token string) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("could not create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("could not read response body: %w", err)
	}

	logger.Get().Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("Request completed")

	return resp.StatusCode, respBody, nil
}
