package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rosered/backend/internal/handlers"
	"github.com/rosered/backend/internal/kvstore"
	"github.com/rosered/backend/internal/metrics"
	"github.com/rosered/backend/internal/store"
	httpserver "github.com/rosered/backend/internal/transport/http"
)

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	KV   *kvstore.Store
	Auth *store.AuthStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&kvstore.Record{}))

	kv := kvstore.New(db, slog.New(slog.NewTextHandler(io.Discard, nil)))

	authStore := &store.AuthStore{KV: kv}
	bookingStore := &store.BookingStore{KV: kv}
	staffStore := &store.StaffStore{KV: kv}
	catalogStore := &store.CatalogStore{KV: kv}
	cartStore := &store.CartStore{KV: kv}

	require.NoError(t, authStore.EnsureDefaultAdmin())

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	e := echo.New()
	httpserver.Register(e, &httpserver.Deps{
		Auth:           authStore,
		AuthHandler:    &handlers.AuthHandler{Auth: authStore, Metrics: collector},
		ProductHandler: &handlers.ProductHandler{Catalog: catalogStore, Cart: cartStore, Metrics: collector},
		BookingHandler: &handlers.BookingHandler{Bookings: bookingStore, Metrics: collector},
		StaffHandler:   &handlers.StaffHandler{Staff: staffStore, Metrics: collector},
		CartHandler:    &handlers.CartHandler{Cart: cartStore, Metrics: collector},
		SearchHandler:  &handlers.SearchHandler{},
		Gatherer:       registry,
	})

	return &testEnv{T: t, E: e, KV: kv, Auth: authStore}
}

func (env *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	env.T.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) loginAdmin() {
	env.T.Helper()
	rec := env.do(http.MethodPost, "/api/v1/login", map[string]any{
		"email":    store.DefaultAdminEmail,
		"password": "admin123",
	})
	require.Equal(env.T, http.StatusOK, rec.Code)
}

func (env *testEnv) register(email, password string) map[string]any {
	env.T.Helper()
	rec := env.do(http.MethodPost, "/api/v1/register", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(env.T, http.StatusOK, rec.Code)

	var user map[string]any
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &user))
	return user
}
