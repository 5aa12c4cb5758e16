package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"topreceit/backend/internal/config"
	"topreceit/backend/internal/logger"
)

// ImageStore uploads recipe and avatar images to an S3-compatible bucket
// and hands back the public URL to store on the entity.
type ImageStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewImageStore connects to the object store configured in AppConfig and
// makes sure the bucket exists.
func NewImageStore(ctx context.Context) (*ImageStore, error) {
	cfg := config.AppConfig
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to object store: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %s: %w", cfg.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket %s: %w", cfg.MinioBucket, err)
		}
		logger.Log.Info("created image bucket: " + cfg.MinioBucket)
	}

	return &ImageStore{client: client, bucket: cfg.MinioBucket, publicURL: strings.TrimRight(cfg.MinioPublicURL, "/")}, nil
}

// Upload stores the image under a random object name, keeping the
// original extension, and returns its public URL.
func (s *ImageStore) Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (string, error) {
	objectName := uuid.NewString() + strings.ToLower(filepath.Ext(filename))

	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", objectName, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}
