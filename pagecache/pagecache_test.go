package pagecache_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yatube/pagecache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := pagecache.NewMemoryStore()
	entry := pagecache.Entry{Status: 200, ContentType: "text/html", Body: []byte("hello")}

	_, ok := store.Get("missing")
	require.False(t, ok)

	store.Set("key", entry, time.Minute)
	got, ok := store.Get("key")
	require.True(t, ok)
	require.Equal(t, entry, got)

	store.Delete("key")
	_, ok = store.Get("key")
	require.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := pagecache.NewMemoryStore()
	store.Set("key", pagecache.Entry{Status: 200, Body: []byte("x")}, 30*time.Millisecond)

	_, ok := store.Get("key")
	require.True(t, ok)

	time.Sleep(60 * time.Millisecond)
	_, ok = store.Get("key")
	require.False(t, ok)
}

func cachedCounterRouter(store pagecache.Store, ttl time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	hits := 0
	router.GET("/", pagecache.CachePage(store, "front", ttl), func(c *gin.Context) {
		hits++
		c.String(http.StatusOK, fmt.Sprintf("render %d", hits))
	})
	router.GET("/missing", pagecache.CachePage(store, "front", ttl), func(c *gin.Context) {
		hits++
		c.String(http.StatusNotFound, fmt.Sprintf("render %d", hits))
	})
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestCachePageReplaysResponse(t *testing.T) {
	store := pagecache.NewMemoryStore()
	router := cachedCounterRouter(store, time.Minute)

	first := get(router, "/")
	second := get(router, "/")
	require.Equal(t, http.StatusOK, first.Code)
	// Identical body even though the handler would have rendered "render 2"
	require.Equal(t, first.Body.String(), second.Body.String())

	// Explicit invalidation makes the next request re-render
	store.Delete("front:/")
	third := get(router, "/")
	require.NotEqual(t, first.Body.String(), third.Body.String())
}

func TestCachePageSkipsErrors(t *testing.T) {
	store := pagecache.NewMemoryStore()
	router := cachedCounterRouter(store, time.Minute)

	first := get(router, "/missing")
	second := get(router, "/missing")
	require.Equal(t, http.StatusNotFound, first.Code)
	require.NotEqual(t, first.Body.String(), second.Body.String())
}

func TestCachePageKeysByURI(t *testing.T) {
	store := pagecache.NewMemoryStore()
	router := cachedCounterRouter(store, time.Minute)

	plain := get(router, "/")
	paged := get(router, "/?page=2")
	require.NotEqual(t, plain.Body.String(), paged.Body.String())
}
