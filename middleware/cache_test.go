package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestResponseCacheNilClientPassesThrough(t *testing.T) {
	r := gin.New()
	r.GET("/things", ResponseCache(nil, 30*time.Second), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Cache"))
}

func TestCacheInvalidatorNilClientPassesThrough(t *testing.T) {
	r := gin.New()
	r.POST("/things", CacheInvalidator(nil), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/things", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCacheKeyVariesWithVersion(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/writings?category=shayari", nil)

	k0 := cacheKey(c, "0")
	assert.Equal(t, k0, cacheKey(c, "0"))

	// Bumping the version orphans every existing entry.
	assert.NotEqual(t, k0, cacheKey(c, "1"))

	other, _ := gin.CreateTestContext(httptest.NewRecorder())
	other.Request = httptest.NewRequest(http.MethodGet, "/api/writings?category=feeling", nil)
	assert.NotEqual(t, k0, cacheKey(other, "0"))
}
