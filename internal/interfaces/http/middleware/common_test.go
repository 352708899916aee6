package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCORSRouter(cfg CORSConfig) *gin.Engine {
	router := gin.New()
	router.Use(CORSWithConfig(cfg))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestCORSWithConfig(t *testing.T) {
	allowList := DefaultCORSConfig()
	allowList.AllowOrigins = []string{"https://app.example.com"}
	allowList.AllowCredentials = true

	wildcard := DefaultCORSConfig()
	wildcard.AllowOrigins = []string{"*"}
	wildcard.AllowCredentials = true

	tests := []struct {
		name        string
		cfg         CORSConfig
		method      string
		origin      string
		wantStatus  int
		wantOrigin  string
		wantCredits bool
	}{
		{"empty allow list sets nothing", DefaultCORSConfig(), http.MethodGet, "https://app.example.com", http.StatusOK, "", false},
		{"listed origin", allowList, http.MethodGet, "https://app.example.com", http.StatusOK, "https://app.example.com", true},
		{"unlisted origin", allowList, http.MethodGet, "https://evil.example.com", http.StatusOK, "", false},
		{"wildcard never sends credentials", wildcard, http.MethodGet, "https://any.example.com", http.StatusOK, "*", false},
		{"preflight for listed origin", allowList, http.MethodOptions, "https://app.example.com", http.StatusNoContent, "https://app.example.com", true},
		{"preflight for unlisted origin", allowList, http.MethodOptions, "https://evil.example.com", http.StatusNoContent, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCORSRouter(tt.cfg)
			req := httptest.NewRequest(tt.method, "/test", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCredits, w.Header().Get("Access-Control-Allow-Credentials") == "true")
			if tt.wantOrigin != "" {
				assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
				assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
				assert.Equal(t, RequestIDHeader, w.Header().Get("Access-Control-Expose-Headers"))
			}
		})
	}
}

func TestDefaultCORSConfig(t *testing.T) {
	cfg := DefaultCORSConfig()
	assert.Empty(t, cfg.AllowOrigins)
	assert.False(t, cfg.AllowCredentials)
	assert.Equal(t, 12*time.Hour, cfg.MaxAge)
	assert.Contains(t, cfg.AllowHeaders, RequestIDHeader)
}

func TestRequestID(t *testing.T) {
	var seen string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	t.Run("generates a uuid", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, seen)
	})

	t.Run("keeps the client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "client-id-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "client-id-1", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "client-id-1", seen)
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", MaxRequestIDLength+1))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
		assert.NoError(t, err)
	})
}

func TestGetRequestID_HeaderFallback(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set(RequestIDHeader, strings.Repeat("a", MaxRequestIDLength+10))

	assert.Len(t, GetRequestID(c), MaxRequestIDLength)

	c.Set(RequestIDKey, "ctx-id")
	assert.Equal(t, "ctx-id", GetRequestID(c))
}
