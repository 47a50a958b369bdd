package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Porismic/JupiterBot/internal/app"
	"github.com/Porismic/JupiterBot/internal/common/logger"
	"github.com/Porismic/JupiterBot/internal/common/middleware"
	"github.com/Porismic/JupiterBot/internal/domain/slots"
	"github.com/Porismic/JupiterBot/internal/features/slots/service"
	"github.com/Porismic/JupiterBot/internal/platform/store"
)

const (
	seller      = "200000000000000001"
	boosterRole = "300000000000000001"
	levelRole   = "300000000000000002"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	core := app.NewCore(app.Options{
		Store:        store.NewMemory(),
		BoosterTiers: map[string]int{boosterRole: 2},
		LevelTiers:   map[string]int{levelRole: 1},
		Logger:       logger.Nop(),
	})
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler(logger.Nop()))
	NewSlotsHandler(core.Dispatcher).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func call(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/v1"+path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func record(t *testing.T, w *httptest.ResponseRecorder) slots.Record {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rec slots.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	return rec
}

func TestSlotsLedger(t *testing.T) {
	r := newRouter()

	rec := record(t, call(r, http.MethodPost, "/slots/"+seller+"/reconcile", `{"roles":["`+boosterRole+`","`+levelRole+`"]}`))
	assert.Equal(t, 3, rec.TotalSlots)

	rec = record(t, call(r, http.MethodPost, "/slots/"+seller+"/grant", `{"amount":2}`))
	assert.Equal(t, 5, rec.TotalSlots)
	assert.Equal(t, 2, rec.ManualSlots)

	for i := 0; i < 5; i++ {
		record(t, call(r, http.MethodPost, "/slots/"+seller+"/consume", ""))
	}
	w := call(r, http.MethodPost, "/slots/"+seller+"/consume", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	rec = record(t, call(r, http.MethodPost, "/slots/"+seller+"/release", ""))
	assert.Equal(t, 4, rec.UsedSlots)

	w = call(r, http.MethodPost, "/slots/"+seller+"/revoke", `{"amount":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "only two were granted manually")

	rec = record(t, call(r, http.MethodPost, "/slots/"+seller+"/reset", ""))
	assert.Zero(t, rec.UsedSlots)

	w = call(r, http.MethodGet, "/slots/"+seller, "")
	require.Equal(t, http.StatusOK, w.Code)
	var snap service.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, 3, snap.RoleBased)
	assert.Equal(t, 5, snap.Available)
}

func TestSlots_Validation(t *testing.T) {
	r := newRouter()

	assert.Equal(t, http.StatusBadRequest, call(r, http.MethodPost, "/slots/"+seller+"/grant", `{"amount":0}`).Code)
	assert.Equal(t, http.StatusBadRequest, call(r, http.MethodPost, "/slots/"+seller+"/reconcile", `{"roles":["booster"]}`).Code)
}

func TestSlots_NeedsDirectory(t *testing.T) {
	r := newRouter()

	assert.Equal(t, http.StatusBadGateway, call(r, http.MethodPost, "/slots/reconcile", "").Code)
	assert.Equal(t, http.StatusBadGateway, call(r, http.MethodPost, "/slots/"+seller+"/reconcile", "").Code)
}

func TestSlots_EmptyRolesSkipLookup(t *testing.T) {
	r := newRouter()

	rec := record(t, call(r, http.MethodPost, "/slots/"+seller+"/reconcile", `{"roles":[]}`))
	assert.Zero(t, rec.TotalSlots)

	assert.Equal(t, http.StatusBadGateway, call(r, http.MethodPost, "/slots/"+seller+"/reconcile", `{"roles":null}`).Code)
}
