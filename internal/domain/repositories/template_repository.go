package repositories

import (
	"context"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

// TemplateRepository fetches markdown document templates
type TemplateRepository interface {
	// Get returns the template for a document kind. It returns an error
	// wrapping entities.ErrTemplateMissing when no template exists.
	Get(ctx context.Context, kind entities.DocumentKind) (string, error)
}
