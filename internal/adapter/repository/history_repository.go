package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

// MemoryHistoryRepository keeps the most recent entries in process memory
type MemoryHistoryRepository struct {
	mu      sync.RWMutex
	entries []*entities.HistoryEntry // oldest first
	limit   int
}

// NewMemoryHistoryRepository creates a history holding at most limit entries
func NewMemoryHistoryRepository(limit int64) *MemoryHistoryRepository {
	if limit <= 0 {
		limit = 200
	}
	return &MemoryHistoryRepository{limit: int(limit)}
}

// Append records an entry, dropping the oldest one when full
func (r *MemoryHistoryRepository) Append(_ context.Context, entry *entities.HistoryEntry) error {
	if entry == nil {
		return errors.New("history entry cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *entry
	r.entries = append(r.entries, &cp)
	if len(r.entries) > r.limit {
		r.entries = r.entries[len(r.entries)-r.limit:]
	}
	return nil
}

// List returns up to limit entries, newest first
func (r *MemoryHistoryRepository) List(_ context.Context, limit int64) ([]*entities.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.entries)
	if limit > 0 && int(limit) < n {
		n = int(limit)
	}
	out := make([]*entities.HistoryEntry, 0, n)
	for i := len(r.entries) - 1; i >= 0 && len(out) < n; i-- {
		cp := *r.entries[i]
		out = append(out, &cp)
	}
	return out, nil
}

// RedisHistoryRepository keeps history in a capped Redis list
type RedisHistoryRepository struct {
	client *redis.Client
	key    string
	limit  int64
}

// NewRedisHistoryRepository creates a history stored under prefix + "history"
func NewRedisHistoryRepository(client *redis.Client, prefix string, limit int64) *RedisHistoryRepository {
	if limit <= 0 {
		limit = 200
	}
	return &RedisHistoryRepository{client: client, key: prefix + "history", limit: limit}
}

// Append pushes an entry and trims the list to the configured size
func (r *RedisHistoryRepository) Append(ctx context.Context, entry *entities.HistoryEntry) error {
	if entry == nil {
		return errors.New("history entry cannot be nil")
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, r.key, data)
	pipe.LTrim(ctx, r.key, 0, r.limit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first
func (r *RedisHistoryRepository) List(ctx context.Context, limit int64) ([]*entities.HistoryEntry, error) {
	if limit <= 0 || limit > r.limit {
		limit = r.limit
	}
	items, err := r.client.LRange(ctx, r.key, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	entries := make([]*entities.HistoryEntry, 0, len(items))
	for _, item := range items {
		var entry entities.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		entries = append(entries, &entry)
	}
	return entries, nil
}
