package cache

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCachedRouter(t *testing.T) (*gin.Engine, *PageCache, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	pc := NewPageCache(client, time.Minute, "page")
	hits := 0
	r := gin.New()
	r.GET("/", pc.Middleware(), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"hits": hits})
	})
	r.POST("/", pc.Middleware(), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"hits": hits})
	})
	return r, pc, &hits
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestPageCacheServesStoredResponse(t *testing.T) {
	r, _, hits := newCachedRouter(t)

	first := get(r, "/")
	second := get(r, "/")

	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, *hits, "second fetch must come from the cache")
}

func TestPageCacheKeyIncludesQuery(t *testing.T) {
	r, _, hits := newCachedRouter(t)

	get(r, "/?page=1")
	get(r, "/?page=2")
	assert.Equal(t, 2, *hits, "pages are cached independently")

	get(r, "/?page=1")
	assert.Equal(t, 2, *hits)
}

func TestPageCacheClearForcesRecompute(t *testing.T) {
	r, pc, hits := newCachedRouter(t)

	first := get(r, "/")
	get(r, "/")
	require.Equal(t, 1, *hits)

	require.NoError(t, pc.Clear(context.Background()))
	third := get(r, "/")
	assert.Equal(t, 2, *hits)
	assert.NotEqual(t, first.Body.String(), third.Body.String())
}

func TestPageCacheIgnoresNonGet(t *testing.T) {
	r, _, hits := newCachedRouter(t)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		r.ServeHTTP(w, req)
	}
	assert.Equal(t, 2, *hits)
}

func TestPageCacheClearScansManyKeys(t *testing.T) {
	r, pc, _ := newCachedRouter(t)

	for i := 0; i < 250; i++ {
		get(r, fmt.Sprintf("/?page=%d", i))
	}
	require.NoError(t, pc.Clear(context.Background()))

	w := get(r, "/?page=0")
	assert.Equal(t, http.StatusOK, w.Code)
}
