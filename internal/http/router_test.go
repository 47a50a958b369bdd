package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Porismic/JupiterBot/internal/app"
	"github.com/Porismic/JupiterBot/internal/common/logger"
	"github.com/Porismic/JupiterBot/internal/common/middleware"
	apphttp "github.com/Porismic/JupiterBot/internal/http"
	"github.com/Porismic/JupiterBot/internal/platform/metrics"
	"github.com/Porismic/JupiterBot/internal/platform/store"
)

const token = "staff-secret"

func newServer(t *testing.T, staffToken string) http.Handler {
	t.Helper()
	s := store.NewMemory()
	m := metrics.New()
	core := app.NewCore(app.Options{Store: s, Metrics: m, Logger: logger.Nop()})
	return apphttp.NewRouter(apphttp.Options{
		Dispatcher: core.Dispatcher,
		Store:      s,
		Origin:     "http://localhost:3000",
		StaffToken: staffToken,
		Retention:  time.Hour,
		Metrics:    m,
		Logger:     logger.Nop(),
	})
}

func do(h http.Handler, method, path, body, staffToken string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if staffToken != "" {
		req.Header.Set(middleware.StaffTokenHeader, staffToken)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_StaffTokenGuardsAPI(t *testing.T) {
	h := newServer(t, token)

	assert.Equal(t, http.StatusForbidden, do(h, http.MethodGet, "/api/v1/giveaways", "", "").Code)
	assert.Equal(t, http.StatusForbidden, do(h, http.MethodGet, "/api/v1/giveaways", "", "wrong").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/v1/giveaways", "", token).Code)

	body := `{"name":"Nitro","prize":"1 month","host_id":"1334277888249303161","channel_id":"1334277888249303162","winners":1,"duration_seconds":60}`
	w := do(h, http.MethodPost, "/api/v1/giveaways", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"created"`)
}

func TestRouter_EmptyTokenLocksAPI(t *testing.T) {
	h := newServer(t, "")
	assert.Equal(t, http.StatusForbidden, do(h, http.MethodGet, "/api/v1/auctions", "", "").Code)
}

func TestRouter_PublicEndpoints(t *testing.T) {
	h := newServer(t, token)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/ready", "", "").Code)

	_ = do(h, http.MethodPost, "/api/v1/stats/1334277888249303161/messages", "", token)
	w := do(h, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jupiter_dispatch_duration_seconds")
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newServer(t, token)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/giveaways", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", middleware.StaffTokenHeader)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
