package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"artfolio/artfolio/config"
)

// FileHost stores raw bytes under a key and hands back a public URL.
type FileHost interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	// Key recovers the key behind a URL returned by Put. ok is false for
	// URLs this host did not issue.
	Key(url string) (key string, ok bool)
}

func keyUnder(prefix, url string) (string, bool) {
	key, ok := strings.CutPrefix(url, prefix)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// NewFileHost picks the implementation named by cfg.FileHost.
func NewFileHost(ctx context.Context, cfg config.Config) (FileHost, error) {
	switch cfg.FileHost {
	case config.FileHostLocal:
		return NewLocalHost(cfg.UploadDir, cfg.UploadBaseURL)
	case config.FileHostMinIO:
		return NewMinIOHost(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported file host: %s", cfg.FileHost)
	}
}
