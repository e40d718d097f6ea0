package repositories

import (
	"context"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

// HistoryRepository remembers processed documents
type HistoryRepository interface {
	// Append records a processed document
	Append(ctx context.Context, entry *entities.HistoryEntry) error

	// List returns up to limit entries, newest first
	List(ctx context.Context, limit int64) ([]*entities.HistoryEntry, error)
}
