package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalHost writes files under a base directory. The router serves them
// back through Handler.
type LocalHost struct {
	basePath string
	baseURL  string
}

func NewLocalHost(basePath, baseURL string) (*LocalHost, error) {
	if basePath == "" {
		basePath = "./uploads"
	}
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalHost{basePath: basePath, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// resolve maps key to a path inside basePath, refusing anything that escapes it.
func (s *LocalHost) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.basePath, filepath.FromSlash(clean)), nil
}

func (s *LocalHost) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	fullPath, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return s.baseURL + path.Clean("/"+key), nil
}

func (s *LocalHost) Delete(ctx context.Context, key string) error {
	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalHost) Key(url string) (string, bool) {
	return keyUnder(s.baseURL+"/", url)
}

// Handler serves stored files. Mount it with the prefix already stripped.
func (s *LocalHost) Handler() http.Handler {
	return http.FileServer(http.Dir(s.basePath))
}
