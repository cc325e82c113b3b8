package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storesapi/internal/adapters/auth"
	"storesapi/internal/adapters/revocation"
	"storesapi/internal/delivery/http/controllers"
	"storesapi/internal/delivery/http/helpers"
	"storesapi/internal/delivery/http/middleware"
	"storesapi/internal/domain"
	"storesapi/internal/repository/memory"
	"storesapi/internal/services"
)

type apiServer struct {
	t      *testing.T
	srv    *httptest.Server
	tokens domain.TokenService
	users  domain.UserService
}

func newAPIServer(t *testing.T) *apiServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := memory.New()
	storeRepo := memory.NewStoreRepository(db)
	itemRepo := memory.NewItemRepository(db)
	tagRepo := memory.NewTagRepository(db)
	userRepo := memory.NewUserRepository(db)
	tokens := auth.NewJWTService("router-secret", time.Minute, time.Hour)
	revocations := revocation.NewMemoryRegistry()
	users := services.NewUserService(userRepo, auth.NewBcryptHasher(4), tokens, revocations)

	mux := NewRouter(Controllers{
		Stores: controllers.NewStoreController(logger, services.NewStoreService(storeRepo, itemRepo, tagRepo)),
		Items:  controllers.NewItemController(logger, services.NewItemService(itemRepo, tagRepo)),
		Tags:   controllers.NewTagController(logger, services.NewTagService(tagRepo, storeRepo, itemRepo)),
		Users:  controllers.NewUserController(logger, users),
		Health: controllers.NewHealthController(logger, nil),
	}, middleware.NewAuthenticator(tokens, revocations, services.NewPolicy(tokens), logger))

	srv := httptest.NewServer(middleware.LoggingMiddleware(logger, mux))
	t.Cleanup(srv.Close)
	return &apiServer{t: t, srv: srv, tokens: tokens, users: users}
}

type apiResult struct {
	status int
	body   []byte
}

func (s *apiServer) do(method, path, token string, body any) apiResult {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, s.srv.URL+path, reader)
	require.NoError(s.t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.srv.Client().Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	return apiResult{status: resp.StatusCode, body: raw}
}

func (r apiResult) data(t *testing.T, dest any) {
	t.Helper()
	var env struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(r.body, &env))
	require.Nil(t, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, dest))
}

func (r apiResult) tokenError(t *testing.T) helpers.TokenErrorResponse {
	t.Helper()
	var body helpers.TokenErrorResponse
	require.NoError(t, json.Unmarshal(r.body, &body))
	return body
}

func (s *apiServer) login(username, password string) domain.TokenPair {
	s.t.Helper()
	res := s.do(http.MethodPost, "/login", "", map[string]string{"username": username, "password": password})
	require.Equal(s.t, http.StatusOK, res.status, string(res.body))
	var pair domain.TokenPair
	res.data(s.t, &pair)
	return pair
}

func TestRouter_adminLifecycle(t *testing.T) {
	s := newAPIServer(t)
	admin, err := s.users.EnsureAdmin(context.Background(), "admin", "admin-password")
	require.NoError(t, err)
	require.Equal(t, int64(1), admin.ID)

	token := s.login("admin", "admin-password").AccessToken

	res := s.do(http.MethodPost, "/store", "", map[string]string{"name": "A"})
	require.Equal(t, http.StatusCreated, res.status)
	var store domain.Store
	res.data(t, &store)
	require.NotZero(t, store.ID)

	res = s.do(http.MethodPost, "/store", "", map[string]string{"name": "A"})
	assert.Equal(t, http.StatusBadRequest, res.status, "duplicate store names are rejected")

	res = s.do(http.MethodPost, "/item", token, map[string]any{"name": "X", "price": 9.99, "store_id": store.ID})
	require.Equal(t, http.StatusCreated, res.status, string(res.body))
	var item domain.Item
	res.data(t, &item)
	itemPath := "/item/" + strconv.FormatInt(item.ID, 10)

	res = s.do(http.MethodGet, itemPath, token, nil)
	require.Equal(t, http.StatusOK, res.status)

	res = s.do(http.MethodDelete, itemPath, token, nil)
	require.Equal(t, http.StatusOK, res.status, string(res.body))

	res = s.do(http.MethodGet, itemPath, token, nil)
	assert.Equal(t, http.StatusNotFound, res.status)
}

func TestRouter_itemCreateRequiresExistingStore(t *testing.T) {
	s := newAPIServer(t)
	_, err := s.users.Register(context.Background(), "alice", "alice-password")
	require.NoError(t, err)
	token := s.login("alice", "alice-password").AccessToken

	res := s.do(http.MethodPost, "/item", token, map[string]any{"name": "X", "price": 1, "store_id": 404})
	assert.Equal(t, http.StatusNotFound, res.status)

	res = s.do(http.MethodGet, "/item", "", nil)
	require.Equal(t, http.StatusOK, res.status)
	var items []domain.Item
	res.data(t, &items)
	assert.Empty(t, items)
}

func TestRouter_tokenRules(t *testing.T) {
	s := newAPIServer(t)
	ctx := context.Background()
	_, err := s.users.EnsureAdmin(ctx, "admin", "admin-password")
	require.NoError(t, err)
	_, err = s.users.Register(ctx, "alice", "alice-password")
	require.NoError(t, err)

	res := s.do(http.MethodPost, "/store", "", map[string]string{"name": "A"})
	require.Equal(t, http.StatusCreated, res.status)
	var store domain.Store
	res.data(t, &store)

	adminToken := s.login("admin", "admin-password").AccessToken
	res = s.do(http.MethodPost, "/item", adminToken, map[string]any{"name": "X", "price": 9.99, "store_id": store.ID})
	require.Equal(t, http.StatusCreated, res.status)
	var item domain.Item
	res.data(t, &item)
	itemPath := "/item/" + strconv.FormatInt(item.ID, 10)

	alice := s.login("alice", "alice-password")

	t.Run("missing token", func(t *testing.T) {
		res := s.do(http.MethodGet, itemPath, "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.status)
		assert.Equal(t, helpers.TokenErrorResponse{Error: "authorization_required", Description: "Request does not contain an access token."}, res.tokenError(t))
	})

	t.Run("non-admin delete", func(t *testing.T) {
		res := s.do(http.MethodDelete, itemPath, alice.AccessToken, nil)
		assert.Equal(t, http.StatusUnauthorized, res.status)
		assert.Equal(t, "authorization_required", res.tokenError(t).Error)

		res = s.do(http.MethodGet, itemPath, alice.AccessToken, nil)
		assert.Equal(t, http.StatusOK, res.status, "the item survives")
	})

	t.Run("refreshed token is not fresh", func(t *testing.T) {
		res := s.do(http.MethodPost, "/refresh", alice.RefreshToken, nil)
		require.Equal(t, http.StatusOK, res.status, string(res.body))
		var refreshed controllers.RefreshResponse
		res.data(t, &refreshed)

		res = s.do(http.MethodPost, "/item", refreshed.AccessToken, map[string]any{"name": "Y", "price": 1, "store_id": store.ID})
		assert.Equal(t, http.StatusUnauthorized, res.status)
		assert.Equal(t, "fresh_token_required", res.tokenError(t).Error)

		res = s.do(http.MethodGet, itemPath, refreshed.AccessToken, nil)
		assert.Equal(t, http.StatusOK, res.status)
	})

	t.Run("refresh token cannot access resources", func(t *testing.T) {
		res := s.do(http.MethodGet, itemPath, alice.RefreshToken, nil)
		assert.Equal(t, http.StatusUnauthorized, res.status)
		assert.Equal(t, "invalid_token", res.tokenError(t).Error)
	})

	t.Run("forged token", func(t *testing.T) {
		forged, _, err := auth.NewJWTService("other-secret", time.Minute, time.Hour).Issue(domain.Identity{UserID: 1, IsAdmin: true}, true)
		require.NoError(t, err)
		res := s.do(http.MethodDelete, itemPath, forged, nil)
		assert.Equal(t, http.StatusUnauthorized, res.status)
		assert.Equal(t, helpers.TokenErrorResponse{Error: "invalid_token", Message: "Signature verification failed."}, res.tokenError(t))
	})

	t.Run("logout revokes", func(t *testing.T) {
		res := s.do(http.MethodPost, "/logout", alice.AccessToken, nil)
		require.Equal(t, http.StatusOK, res.status)

		for i := 0; i < 2; i++ {
			res = s.do(http.MethodGet, itemPath, alice.AccessToken, nil)
			assert.Equal(t, http.StatusUnauthorized, res.status)
			assert.Equal(t, helpers.TokenErrorResponse{Error: "token_revoked", Description: "The token has been revoked."}, res.tokenError(t))
		}

		res = s.do(http.MethodPost, "/logout", alice.AccessToken, nil)
		assert.Equal(t, http.StatusUnauthorized, res.status)
	})

	t.Run("open endpoints ignore tokens", func(t *testing.T) {
		res := s.do(http.MethodGet, "/store", "not-a-token", nil)
		assert.Equal(t, http.StatusOK, res.status)
		res = s.do(http.MethodPut, itemPath, "", map[string]any{"name": "X2", "price": 3})
		assert.Equal(t, http.StatusCreated, res.status)
	})

	t.Run("admin deletes user", func(t *testing.T) {
		res := s.do(http.MethodDelete, "/user/2", alice.RefreshToken, nil)
		assert.Equal(t, http.StatusUnauthorized, res.status)

		res = s.do(http.MethodDelete, "/user/2", adminToken, nil)
		require.Equal(t, http.StatusOK, res.status)
		res = s.do(http.MethodGet, "/user/2", adminToken, nil)
		assert.Equal(t, http.StatusNotFound, res.status)
	})
}

func TestRouter_tagsAndHealth(t *testing.T) {
	s := newAPIServer(t)

	res := s.do(http.MethodPost, "/store", "", map[string]string{"name": "A"})
	require.Equal(t, http.StatusCreated, res.status)
	var store domain.Store
	res.data(t, &store)
	storePath := "/store/" + strconv.FormatInt(store.ID, 10)

	res = s.do(http.MethodPost, storePath+"/tag", "", map[string]string{"name": "furniture"})
	require.Equal(t, http.StatusCreated, res.status)
	var tag domain.Tag
	res.data(t, &tag)

	res = s.do(http.MethodPut, "/item/7", "", map[string]any{"name": "chair", "price": 5, "store_id": store.ID})
	require.Equal(t, http.StatusCreated, res.status)

	linkPath := "/item/7/tag/" + strconv.FormatInt(tag.ID, 10)
	res = s.do(http.MethodPost, linkPath, "", nil)
	require.Equal(t, http.StatusCreated, res.status)

	res = s.do(http.MethodGet, storePath, "", nil)
	require.Equal(t, http.StatusOK, res.status)
	var full domain.Store
	res.data(t, &full)
	assert.Len(t, full.Items, 1)
	assert.Len(t, full.Tags, 1)

	res = s.do(http.MethodDelete, storePath, "", nil)
	require.Equal(t, http.StatusOK, res.status)
	res = s.do(http.MethodGet, "/tag/"+strconv.FormatInt(tag.ID, 10), "", nil)
	assert.Equal(t, http.StatusNotFound, res.status, "tags go with their store")

	res = s.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, res.status)
}
