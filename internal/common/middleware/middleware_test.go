package middleware

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Porismic/JupiterBot/internal/common/errors"
	"github.com/Porismic/JupiterBot/internal/common/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(h gin.HandlerFunc, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	log := logger.Nop()
	r.Use(RequestID(), Logger(log), Recovery(log), ErrorHandler(log))
	r.GET("/x", append(extra, h)...)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want int
	}{
		{errors.ErrCodeValidation, http.StatusBadRequest},
		{errors.ErrCodeNotFound, http.StatusNotFound},
		{errors.ErrCodePermissionDenied, http.StatusForbidden},
		{errors.ErrCodeNotEligible, http.StatusForbidden},
		{errors.ErrCodeInvalidState, http.StatusConflict},
		{errors.ErrCodeCapacityExceeded, http.StatusConflict},
		{errors.ErrCodePlatform, http.StatusBadGateway},
		{errors.ErrCodeStore, http.StatusInternalServerError},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.code))
		})
	}
}

func TestErrorHandler_RendersAppError(t *testing.T) {
	r := newRouter(func(c *gin.Context) {
		_ = c.Error(errors.NewNotFoundError("giveaway", "g1"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "req-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "req-1", resp.RequestID)
	require.NotNil(t, resp.Error)
	assert.Equal(t, errors.ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "/x", resp.Path)
}

func TestErrorHandler_WrapsPlainErrors(t *testing.T) {
	r := newRouter(func(c *gin.Context) {
		_ = c.Error(stderrors.New("boom"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, errors.ErrCodeInternal, decode(t, w).Error.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRecovery(t *testing.T) {
	r := newRouter(func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, errors.ErrCodeInternal, decode(t, w).Error.Code)
}

func TestRequireStaff(t *testing.T) {
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }

	tests := []struct {
		name      string
		token     string
		presented string
		want      int
	}{
		{name: "valid token", token: "secret", presented: "secret", want: http.StatusOK},
		{name: "wrong token", token: "secret", presented: "guess", want: http.StatusForbidden},
		{name: "missing token", token: "secret", want: http.StatusForbidden},
		{name: "staff api locked", token: "", presented: "", want: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(ok, RequireStaff(tt.token))
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.presented != "" {
				req.Header.Set(StaffTokenHeader, tt.presented)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusForbidden {
				assert.Equal(t, errors.ErrCodePermissionDenied, decode(t, w).Error.Code)
			}
		})
	}
}
