package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storesapi/internal/delivery/http/helpers"
	"storesapi/internal/delivery/http/middleware"
	"storesapi/internal/domain"
)

func withClaims(req *http.Request, claims *domain.Claims) *http.Request {
	return req.WithContext(middleware.SetClaims(req.Context(), claims))
}

func TestUserController_RegisterLogin(t *testing.T) {
	env := newTestEnv()
	creds := CredentialsRequest{Username: "alice", Password: "correct-horse"}

	rec := httptest.NewRecorder()
	env.users.Register(rec, newRequest(http.MethodPost, "/register", creds))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "correct-horse")
	assert.NotContains(t, rec.Body.String(), "password")
	var user domain.User
	require.Nil(t, envelope(t, rec, &user))
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.IsAdmin)

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		body       any
		wantStatus int
		wantCode   string
	}{
		{"duplicate register", env.users.Register, creds, http.StatusBadRequest, helpers.ErrCodeConflict},
		{"short password", env.users.Register, CredentialsRequest{Username: "bob", Password: "short"}, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"missing username", env.users.Register, `{"password":"long-enough"}`, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"wrong password", env.users.Login, CredentialsRequest{Username: "alice", Password: "wrong-password"}, http.StatusUnauthorized, helpers.ErrCodeUnauthorized},
		{"unknown user", env.users.Login, CredentialsRequest{Username: "nobody", Password: "whatever1"}, http.StatusUnauthorized, helpers.ErrCodeUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, newRequest(http.MethodPost, "/", tt.body))
			assert.Equal(t, tt.wantStatus, rec.Code)
			apiErr := envelope(t, rec, nil)
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}

	rec = httptest.NewRecorder()
	env.users.Login(rec, newRequest(http.MethodPost, "/login", creds))
	require.Equal(t, http.StatusOK, rec.Code)
	var pair domain.TokenPair
	require.Nil(t, envelope(t, rec, &pair))

	access, err := env.tokens.Validate(pair.AccessToken)
	require.NoError(t, err)
	assert.True(t, access.Fresh)
	assert.Equal(t, user.ID, access.UserID)
	refresh, err := env.tokens.Validate(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, domain.TokenTypeRefresh, refresh.Type)
}

func TestUserController_RefreshLogout(t *testing.T) {
	env := newTestEnv()
	rec := httptest.NewRecorder()
	env.users.Register(rec, newRequest(http.MethodPost, "/register", CredentialsRequest{Username: "alice", Password: "correct-horse"}))
	require.Equal(t, http.StatusCreated, rec.Code)
	var user domain.User
	require.Nil(t, envelope(t, rec, &user))

	_, refreshClaims, err := env.tokens.IssueRefresh(user.Identity())
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	env.users.Refresh(rec, withClaims(newRequest(http.MethodPost, "/refresh", nil), refreshClaims))
	require.Equal(t, http.StatusOK, rec.Code)
	var refreshed RefreshResponse
	require.Nil(t, envelope(t, rec, &refreshed))
	claims, err := env.tokens.Validate(refreshed.AccessToken)
	require.NoError(t, err)
	assert.False(t, claims.Fresh)

	rec = httptest.NewRecorder()
	env.users.Logout(rec, withClaims(newRequest(http.MethodPost, "/logout", nil), claims))
	require.Equal(t, http.StatusOK, rec.Code)
	revoked, err := env.revocations.IsRevoked(context.Background(), claims.JTI)
	require.NoError(t, err)
	assert.True(t, revoked)

	t.Run("refresh for deleted user", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.users.Delete(rec, newRequest(http.MethodDelete, "/user/1", nil, "id", "1"))
		require.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		env.users.Refresh(rec, withClaims(newRequest(http.MethodPost, "/refresh", nil), refreshClaims))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"invalid_token","message":"Signature verification failed."}`, rec.Body.String())
	})

	t.Run("no claims in context", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.users.Logout(rec, newRequest(http.MethodPost, "/logout", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserController_GetDelete(t *testing.T) {
	env := newTestEnv()
	rec := httptest.NewRecorder()
	env.users.Register(rec, newRequest(http.MethodPost, "/register", CredentialsRequest{Username: "alice", Password: "correct-horse"}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	env.users.Get(rec, newRequest(http.MethodGet, "/user/1", nil, "id", "1"))
	require.Equal(t, http.StatusOK, rec.Code)
	var user domain.User
	require.Nil(t, envelope(t, rec, &user))
	assert.Equal(t, "alice", user.Username)

	rec = httptest.NewRecorder()
	env.users.Delete(rec, newRequest(http.MethodDelete, "/user/1", nil, "id", "1"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	env.users.Get(rec, newRequest(http.MethodGet, "/user/1", nil, "id", "1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func TestHealthController_Check(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		wantStatus int
	}{
		{"no database", nil, http.StatusOK},
		{"database up", fakePinger{}, http.StatusOK},
		{"database down", fakePinger{err: errors.New("dial tcp: refused")}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHealthController(testLogger, tt.db).Check(rec, newRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
