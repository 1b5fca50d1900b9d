package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"artfolio/artfolio/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinIOHost struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinIOHost(ctx context.Context, cfg config.Config) (*MinIOHost, error) {
	bucket := cfg.MinIOBucket
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: cfg.MinIOUseSSL,
		},
	)
	if err != nil {
		return nil, err
	}
	// Create bucket if not exists
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	publicURL := cfg.MinIOPublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.MinIOUseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.MinIOEndpoint)
	}
	return &MinIOHost{client: client, bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

func (m *MinIOHost) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return m.URL(key), nil
}

func (m *MinIOHost) Delete(ctx context.Context, key string) error {
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

func (m *MinIOHost) Key(url string) (string, bool) {
	return keyUnder(m.URL(""), url)
}

// URL is the public address of key: <public_base>/<bucket>/<key>.
func (m *MinIOHost) URL(key string) string {
	return m.publicURL + "/" + m.bucket + "/" + key
}
