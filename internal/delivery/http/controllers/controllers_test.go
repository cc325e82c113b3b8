package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storesapi/internal/adapters/auth"
	"storesapi/internal/adapters/revocation"
	"storesapi/internal/delivery/http/helpers"
	"storesapi/internal/domain"
	"storesapi/internal/repository/memory"
	"storesapi/internal/services"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type testEnv struct {
	db          *memory.DB
	tokens      domain.TokenService
	revocations domain.RevocationRegistry
	stores      *StoreController
	items       *ItemController
	tags        *TagController
	users       *UserController
}

func newTestEnv() *testEnv {
	db := memory.New()
	storeRepo := memory.NewStoreRepository(db)
	itemRepo := memory.NewItemRepository(db)
	tagRepo := memory.NewTagRepository(db)
	userRepo := memory.NewUserRepository(db)
	tokens := auth.NewJWTService("test-secret", time.Minute, time.Hour)
	revocations := revocation.NewMemoryRegistry()

	return &testEnv{
		db:          db,
		tokens:      tokens,
		revocations: revocations,
		stores:      NewStoreController(testLogger, services.NewStoreService(storeRepo, itemRepo, tagRepo)),
		items:       NewItemController(testLogger, services.NewItemService(itemRepo, tagRepo)),
		tags:        NewTagController(testLogger, services.NewTagService(tagRepo, storeRepo, itemRepo)),
		users:       NewUserController(testLogger, services.NewUserService(userRepo, auth.NewBcryptHasher(4), tokens, revocations)),
	}
}

// newRequest builds a request with optional JSON body and path values given as name, value pairs.
func newRequest(method, target string, body any, pathValues ...string) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(pathValues); i += 2 {
		req.SetPathValue(pathValues[i], pathValues[i+1])
	}
	return req
}

// envelope decodes an APIResponse, unmarshalling data into dataDest when non-nil.
func envelope(t *testing.T, rec *httptest.ResponseRecorder, dataDest any) *helpers.APIError {
	t.Helper()
	var body struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	if dataDest != nil {
		require.NoError(t, json.Unmarshal(body.Data, dataDest))
	}
	return body.Error
}
