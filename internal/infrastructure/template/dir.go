package template

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
	"github.com/cnmi-csc/busybee/internal/domain/repositories"
)

// DirSource reads <dir>/<kind>.md
type DirSource struct {
	dir string
}

// NewDirSource creates a directory template source
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Get reads the template for kind from disk
func (s *DirSource) Get(_ context.Context, kind entities.DocumentKind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown kind %q", entities.ErrTemplateMissing, kind)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, string(kind)+".md"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", entities.ErrTemplateMissing, kind)
		}
		return "", fmt.Errorf("%w: %v", entities.ErrTemplateMissing, err)
	}
	return string(data), nil
}

// Chain tries each source in order and returns the first template found
type Chain []repositories.TemplateRepository

// Get returns the first successful template, or the last error
func (c Chain) Get(ctx context.Context, kind entities.DocumentKind) (string, error) {
	err := fmt.Errorf("%w: no template sources configured", entities.ErrTemplateMissing)
	for _, src := range c {
		var body string
		body, err = src.Get(ctx, kind)
		if err == nil {
			return body, nil
		}
	}
	return "", err
}
