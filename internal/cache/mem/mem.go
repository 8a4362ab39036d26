// Package mem implements cache.Cache on an in-process map. It is the fallback
// when no Redis address is configured: history, counters and snippets then
// live only as long as the process.
package mem

import (
	"context"
	"encoding/json"
	"path"
	"strconv"
	"sync"
	"time"

	"devtools/internal/cache"
)

type entry struct {
	data      []byte
	expiresAt time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

type store struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

// New creates an empty in-memory cache.
func New() cache.Cache {
	return &store{
		data: map[string]entry{},
		now:  time.Now,
	}
}

func (s *store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok || e.expired(s.now()) {
		return nil, false, nil
	}
	return e.data, true, nil
}

func (s *store) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return ok, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{data: value}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.data[key] = e
	s.mu.Unlock()
	return nil
}

func (s *store) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data, ttl)
}

func (s *store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

func (s *store) Incr(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	if e, ok := s.data[key]; ok && !e.expired(s.now()) {
		parsed, err := strconv.ParseInt(string(e.data), 10, 64)
		if err != nil {
			return 0, err
		}
		n = parsed
	}
	n++
	s.data[key] = entry{data: []byte(strconv.FormatInt(n, 10))}
	return n, nil
}

func (s *store) Keys(_ context.Context, pattern string) ([]string, error) {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.data))
	for k, e := range s.data {
		if e.expired(now) {
			continue
		}
		if ok, _ := path.Match(pattern, k); ok {
			out = append(out, k)
		}
	}
	return out, nil
}

func (s *store) Ping(context.Context) error { return nil }
