package pagecache

import (
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type memoryEntry struct {
	entry     Entry
	expiresAt time.Time
}

// MemoryStore is the in-process backend. Expired entries are dropped
// lazily on the next Get.
type MemoryStore struct {
	entries cmap.ConcurrentMap[string, memoryEntry]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: cmap.New[memoryEntry]()}
}

func (s *MemoryStore) Get(key string) (Entry, bool) {
	e, ok := s.entries.Get(key)
	if !ok {
		return Entry{}, false
	}
	if time.Now().After(e.expiresAt) {
		s.entries.Remove(key)
		return Entry{}, false
	}
	return e.entry, true
}

func (s *MemoryStore) Set(key string, entry Entry, ttl time.Duration) {
	s.entries.Set(key, memoryEntry{entry: entry, expiresAt: time.Now().Add(ttl)})
}

func (s *MemoryStore) Delete(key string) {
	s.entries.Remove(key)
}
