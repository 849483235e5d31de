package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkobe24/memorycard-go/internal/credentials"
)

func TestLoginStoresAndReusesTokens(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			assert.Empty(t, r.Header.Get("Authorization"), "login must not carry a bearer token")
			var req loginRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "a@b.com", req.Email)
			assert.Equal(t, "pw123456", req.Password)
			writeJSON(w, http.StatusOK, tokenResponse{AccessToken: "access-1", RefreshToken: "refresh-1", TokenType: "bearer"})
		case "/api/cart":
			gotAuth = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, Cart{ID: 1, UserID: 9})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	store := credentials.NewMemoryStore()
	client := newTestClient(srv.URL, store, nil)

	require.NoError(t, client.Login(context.Background(), "a@b.com", "pw123456"))

	creds, err := store.Credentials()
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "access-1", creds.AccessToken)
	assert.Equal(t, "refresh-1", creds.RefreshToken)

	_, err = client.Cart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer access-1", gotAuth)
}

func TestLoginRejectionDoesNotTouchSession(t *testing.T) {
	var refreshCalls, navigations int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/refresh" {
			atomic.AddInt32(&refreshCalls, 1)
		}
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "wrong email or password"})
	}))
	defer srv.Close()

	store := credentials.NewMemoryStore()
	client := newTestClient(srv.URL, store, func() { atomic.AddInt32(&navigations, 1) })

	err := client.Login(context.Background(), "a@b.com", "nope")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "wrong email or password", apiErr.Message)

	assert.EqualValues(t, 0, atomic.LoadInt32(&refreshCalls), "a rejected login is not an expired session")
	assert.EqualValues(t, 0, atomic.LoadInt32(&navigations))
}

func TestRegisterStoresTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Ada Lovelace", req.FullName)
		writeJSON(w, http.StatusCreated, tokenResponse{AccessToken: "access-1", RefreshToken: "refresh-1", TokenType: "bearer"})
	}))
	defer srv.Close()

	store := credentials.NewMemoryStore()
	client := newTestClient(srv.URL, store, nil)

	require.NoError(t, client.Register(context.Background(), "ada@b.com", "pw123456", "Ada Lovelace"))

	creds, err := store.Credentials()
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "access-1", creds.AccessToken)
}

func TestMeCachesIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, User{ID: 9, Email: "a@b.com", FullName: "Ada Lovelace", Role: "user", CreatedAt: "2026-01-01T00:00:00"})
	}))
	defer srv.Close()

	store := seedStore(t, "access-1", "refresh-1")
	client := newTestClient(srv.URL, store, nil)

	user, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", user.FullName)

	identity, err := client.Identity()
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, int64(9), identity.ID)
	assert.Equal(t, "a@b.com", identity.Email)
	assert.Equal(t, "user", identity.Role)
}

func TestLogoutClearsEverythingAndNavigates(t *testing.T) {
	var navigations int32
	store := seedStore(t, "access-1", "refresh-1")
	require.NoError(t, store.SaveIdentity(&credentials.Identity{ID: 9, Email: "a@b.com"}))

	client := newTestClient("http://unused", store, func() { atomic.AddInt32(&navigations, 1) })

	client.Logout()

	creds, err := store.Credentials()
	require.NoError(t, err)
	assert.Nil(t, creds)
	identity, err := store.Identity()
	require.NoError(t, err)
	assert.Nil(t, identity)
	assert.EqualValues(t, 1, atomic.LoadInt32(&navigations))

	// Terminating again is harmless.
	client.Logout()
	assert.EqualValues(t, 2, atomic.LoadInt32(&navigations))
}
