// Package pagecache keeps rendered responses for a short, fixed window.
// The front page is the only consumer: it is the most-hit page and its
// content tolerates being up to 20 seconds stale.
package pagecache

import (
	"time"

	"yatube/config"
)

type Entry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type Store interface {
	Get(key string) (Entry, bool)
	Set(key string, entry Entry, ttl time.Duration)
	Delete(key string)
}

var Instance Store

func Init() {
	if config.REDIS_ADDR != "" {
		Instance = NewRedisStore(config.REDIS_ADDR, config.REDIS_PASSWORD)
		return
	}
	Instance = NewMemoryStore()
}
