package pagecache

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CachePage replays a stored response when one exists for the request
// URI, and otherwise records the rendered one. Only 200 responses are
// stored; there is no invalidation on writes, entries just expire.
func CachePage(store Store, keyPrefix string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyPrefix + ":" + c.Request.RequestURI
		if entry, ok := store.Get(key); ok {
			c.Data(entry.Status, entry.ContentType, entry.Body)
			c.Abort()
			return
		}
		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Next()
		if cw.Status() != http.StatusOK {
			return
		}
		store.Set(key, Entry{
			Status:      cw.Status(),
			ContentType: cw.Header().Get("Content-Type"),
			Body:        cw.buf.Bytes(),
		}, ttl)
	}
}
