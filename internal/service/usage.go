package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"devtools/internal/cache"
	"devtools/internal/config"
	"devtools/internal/model"
)

const (
	historyKey     = "history:recent"
	statsKeyPrefix = "stats:tool:"
)

// UsageService records tool invocations and reads back recent history and
// per-tool counters. Recording is best-effort: tool handlers must never fail
// a request because the cache is unavailable.
type UsageService interface {
	Record(ctx context.Context, tool, action string, success bool) error
	Recent(ctx context.Context) ([]model.HistoryEntry, error)
	Stats(ctx context.Context) ([]model.UsageStat, error)
}

type usageService struct {
	store cache.Cache
	cfg   config.ToolsConfig
	now   func() time.Time

	// histMu serializes the history read-modify-write. Single-process tool;
	// cross-instance atomicity is out of scope.
	histMu sync.Mutex
}

// NewUsageService constructs a new UsageService.
func NewUsageService(store cache.Cache, cfg config.ToolsConfig) UsageService {
	return &usageService{store: store, cfg: cfg, now: time.Now}
}

func (s *usageService) Record(ctx context.Context, tool, action string, success bool) error {
	if _, err := s.store.Incr(ctx, statsKeyPrefix+tool); err != nil {
		return err
	}

	s.histMu.Lock()
	defer s.histMu.Unlock()

	var entries []model.HistoryEntry
	if _, err := s.store.GetJSON(ctx, historyKey, &entries); err != nil {
		return err
	}

	entries = append([]model.HistoryEntry{{
		Tool:    tool,
		Action:  action,
		Success: success,
		At:      s.now().UTC(),
	}}, entries...)
	if len(entries) > s.cfg.HistoryMax {
		entries = entries[:s.cfg.HistoryMax]
	}
	return s.store.SetJSON(ctx, historyKey, entries, s.cfg.HistoryTTL)
}

func (s *usageService) Recent(ctx context.Context) ([]model.HistoryEntry, error) {
	var entries []model.HistoryEntry
	if _, err := s.store.GetJSON(ctx, historyKey, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	return entries, nil
}

func (s *usageService) Stats(ctx context.Context) ([]model.UsageStat, error) {
	keys, err := s.store.Keys(ctx, statsKeyPrefix+"*")
	if err != nil {
		return nil, err
	}

	stats := make([]model.UsageStat, 0, len(keys))
	for _, key := range keys {
		raw, ok, err := s.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		count, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			continue
		}
		stats = append(stats, model.UsageStat{
			Tool:  strings.TrimPrefix(key, statsKeyPrefix),
			Count: count,
		})
	}
	return stats, nil
}
