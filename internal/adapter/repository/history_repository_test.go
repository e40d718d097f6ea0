package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
	"github.com/cnmi-csc/busybee/internal/domain/repositories"
)

var (
	_ repositories.HistoryRepository = (*MemoryHistoryRepository)(nil)
	_ repositories.HistoryRepository = (*RedisHistoryRepository)(nil)
)

func entry(title string) *entities.HistoryEntry {
	return &entities.HistoryEntry{
		DocumentID: uuid.New(),
		Title:      title,
		Folder:     entities.FolderNotes,
		CreatedAt:  time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	}
}

func TestMemoryHistoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHistoryRepository(2)

	require.NoError(t, repo.Append(ctx, entry("first")))
	require.NoError(t, repo.Append(ctx, entry("second")))
	require.NoError(t, repo.Append(ctx, entry("third")))
	assert.Error(t, repo.Append(ctx, nil))

	list, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "second", list[1].Title)

	list, err = repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "third", list[0].Title)
}

func TestRedisHistoryRepository(t *testing.T) {
	addr := os.Getenv("BUSYBEE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("BUSYBEE_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	prefix := "busybee-test-" + uuid.NewString() + ":"
	defer client.Del(ctx, prefix+"history")

	repo := NewRedisHistoryRepository(client, prefix, 2)
	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Append(ctx, entry(title)))
	}

	list, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "second", list[1].Title)
}
