package repositories

import (
	"context"
	"io"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

// DocumentRepository writes files into the fixed output folders
type DocumentRepository interface {
	// Save stores content under folder/filename and returns its location
	Save(ctx context.Context, folder entities.Folder, filename string, content io.Reader, size int64, contentType string) (string, error)

	// List returns files stored in a folder, newest first
	List(ctx context.Context, folder entities.Folder) ([]*entities.StoredFile, error)
}
