package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type pingRoutes struct {
	path string
}

func (p pingRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET(p.path, func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	rg.GET(p.path+"/panic", func(c *gin.Context) {
		panic("boom")
	})
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	NewRouter(engine).Register(pingRoutes{"/a"}, pingRoutes{"/b"}).Setup()

	for _, path := range []string{"/api/v1/a", "/api/v1/b"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "pong", w.Body.String())
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/a", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func testHTTPConfig() config.HTTPConfig {
	return config.HTTPConfig{
		MaxBodySize:      1 << 10,
		CORSAllowOrigins: []string{"https://shop.example.com"},
	}
}

func TestNewEngine(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	engine, err := NewEngine("development", testHTTPConfig(), zap.New(core))
	require.NoError(t, err)
	NewRouter(engine).Register(pingRoutes{"/ping"}).Setup()

	t.Run("applies middleware chain", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
		req.Header.Set("Origin", "https://shop.example.com")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))

		entries := logs.FilterMessage("HTTP Request").All()
		require.NotEmpty(t, entries)
		assert.Equal(t, w.Header().Get("X-Request-ID"), entries[len(entries)-1].ContextMap()["request_id"])
	})

	t.Run("recovers from panics", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
	})

	t.Run("rejects invalid trusted proxy", func(t *testing.T) {
		cfg := testHTTPConfig()
		cfg.TrustedProxies = []string{"not-an-ip"}
		_, err := NewEngine("development", cfg, zap.NewNop())
		assert.Error(t, err)
	})
}
