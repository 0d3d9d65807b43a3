package pagecache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares the page cache between server processes.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(key string) (Entry, bool) {
	val, err := s.client.Get(context.Background(), key).Bytes()
	if err != nil {
		return Entry{}, false
	}
	var entry Entry
	if err = json.Unmarshal(val, &entry); err != nil {
		return Entry{}, false
	}
	return entry, true
}

func (s *RedisStore) Set(key string, entry Entry, ttl time.Duration) {
	val, err := json.Marshal(entry)
	if err != nil {
		return
	}
	s.client.Set(context.Background(), key, val, ttl)
}

func (s *RedisStore) Delete(key string) {
	s.client.Del(context.Background(), key)
}
