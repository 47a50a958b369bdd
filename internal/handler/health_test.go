package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func serve(t *testing.T, p Pinger, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler(p).RegisterRoutes(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestProbes(t *testing.T) {
	assert.Equal(t, http.StatusOK, serve(t, pinger{}, "/health").Code)
	assert.Equal(t, http.StatusOK, serve(t, pinger{}, "/live").Code)
	assert.Equal(t, http.StatusOK, serve(t, pinger{}, "/ready").Code)

	w := serve(t, pinger{err: errors.New("connection refused")}, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")

	assert.Equal(t, http.StatusOK, serve(t, pinger{err: errors.New("down")}, "/live").Code)
}
