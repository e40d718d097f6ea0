package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
	"github.com/cnmi-csc/busybee/pkg/config"
)

// MinIOClient stores output files as objects named <baseDir>/<folder>/<filename>
type MinIOClient struct {
	client    *minio.Client
	bucket    string
	prefix    string
	publicURL string // public endpoint used when handing out download URLs
}

// NewMinIOClient creates a new MinIO client and makes sure the bucket exists
func NewMinIOClient(ctx context.Context, cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client:    minioClient,
		bucket:    cfg.BucketName,
		prefix:    strings.Trim(cfg.BaseDir, "/"),
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}
	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}
	return client, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Save uploads content and returns its bucket/object location
func (m *MinIOClient) Save(ctx context.Context, folder entities.Folder, filename string, content io.Reader, size int64, contentType string) (string, error) {
	if !folder.Valid() {
		return "", fmt.Errorf("unknown folder %q", folder)
	}
	objectName := m.objectName(folder, filename)
	_, err := m.client.PutObject(ctx, m.bucket, objectName, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return m.bucket + "/" + objectName, nil
}

// List returns the objects in a folder, newest first
func (m *MinIOClient) List(ctx context.Context, folder entities.Folder) ([]*entities.StoredFile, error) {
	if !folder.Valid() {
		return nil, fmt.Errorf("unknown folder %q", folder)
	}
	prefix := m.objectName(folder, "")

	var files []*entities.StoredFile
	objectCh := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})
	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("error listing objects: %w", object.Err)
		}
		files = append(files, &entities.StoredFile{
			Name:       path.Base(object.Key),
			Folder:     folder,
			Size:       object.Size,
			Location:   m.bucket + "/" + object.Key,
			ModifiedAt: object.LastModified,
		})
	}
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].ModifiedAt.After(files[j].ModifiedAt)
	})
	return files, nil
}

// FileURL returns a presigned download URL, rewritten to the public endpoint
// when one is configured.
func (m *MinIOClient) FileURL(ctx context.Context, folder entities.Folder, filename string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, m.objectName(folder, filename), expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	if m.publicURL == "" {
		return u.String(), nil
	}
	return m.publicURL + u.RequestURI(), nil
}

// Info returns information about the bucket and connection
func (m *MinIOClient) Info(ctx context.Context) (map[string]interface{}, error) {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	return map[string]interface{}{
		"backend":       "minio",
		"bucket":        m.bucket,
		"bucket_exists": exists,
		"endpoint":      m.client.EndpointURL().String(),
	}, nil
}

func (m *MinIOClient) objectName(folder entities.Folder, filename string) string {
	name := string(folder) + "/" + filename
	if m.prefix != "" {
		name = m.prefix + "/" + name
	}
	return name
}
