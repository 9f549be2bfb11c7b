package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingController struct{}

func (pingController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func (pingController) RegisterProtected(route *gin.RouterGroup) {
	route.GET("/secret", func(c *gin.Context) { c.String(http.StatusOK, "secret") })
}

func deny(c *gin.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandler_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, err := NewRouter(Config{
		BaseURL:                 "/api",
		Controllers:             []i.Controller{pingController{}},
		AuthorizationMiddleware: deny,
	}).Handler()
	require.NoError(t, err)

	w := serve(t, h, "/api/v1/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	w = serve(t, h, "/api/v1/secret")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(t, h, "/")
	assert.Equal(t, http.StatusNotFound, w.Code, "no assets, no page")
}

func TestHandler_Assets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	assets := fstest.MapFS{
		"index.html": {Data: []byte("<canvas id=\"gameCanvas\"></canvas>")},
		"game.js":    {Data: []byte("console.log('maze')")},
	}
	h, err := NewRouter(Config{BaseURL: "/api", Assets: assets}).Handler()
	require.NoError(t, err)

	w := serve(t, h, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gameCanvas")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = serve(t, h, "/static/game.js")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "maze")
}

func TestHandler_AssetsWithoutIndex(t *testing.T) {
	_, err := NewRouter(Config{Assets: fstest.MapFS{}}).Handler()
	assert.Error(t, err)
}
