package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

// LocalStore writes output files under <baseDir>/<folder>/
type LocalStore struct {
	baseDir string
}

// NewLocalStore creates the base directory and the four output folders
func NewLocalStore(baseDir string) (*LocalStore, error) {
	for _, folder := range entities.Folders {
		if err := os.MkdirAll(filepath.Join(baseDir, string(folder)), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create folder %s: %w", folder, err)
		}
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// Save writes content to folder/filename and returns the file path
func (s *LocalStore) Save(ctx context.Context, folder entities.Folder, filename string, content io.Reader, _ int64, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := s.path(folder, filename)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".busybee-*")
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to move file into place: %w", err)
	}
	return path, nil
}

// List returns the files in a folder, newest first
func (s *LocalStore) List(_ context.Context, folder entities.Folder) ([]*entities.StoredFile, error) {
	dir, err := s.path(folder, "")
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	files := make([]*entities.StoredFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || e.Name()[0] == '.' {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, &entities.StoredFile{
			Name:       e.Name(),
			Folder:     folder,
			Size:       info.Size(),
			Location:   filepath.Join(dir, e.Name()),
			ModifiedAt: info.ModTime(),
		})
	}
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].ModifiedAt.After(files[j].ModifiedAt)
	})
	return files, nil
}

// Info describes the store for health reporting
func (s *LocalStore) Info(_ context.Context) (map[string]interface{}, error) {
	info := map[string]interface{}{
		"backend":  "local",
		"base_dir": s.baseDir,
	}
	if _, err := os.Stat(s.baseDir); err != nil {
		return nil, fmt.Errorf("base directory unavailable: %w", err)
	}
	return info, nil
}

func (s *LocalStore) path(folder entities.Folder, filename string) (string, error) {
	if !folder.Valid() {
		return "", fmt.Errorf("unknown folder %q", folder)
	}
	if filename != "" && (filename != filepath.Base(filename) || filename == "." || filename == "..") {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	return filepath.Join(s.baseDir, string(folder), filename), nil
}
