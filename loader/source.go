package loader

import (
	"context"
	"fmt"
	"os"
	"time"

	"hotel-forecast/api"
	"hotel-forecast/config"
	"hotel-forecast/models"
)

// Source yields the raw bytes of one input table. Read failures wrap
// models.ErrDataUnavailable.
type Source interface {
	Name() string
	Read(ctx context.Context) ([]byte, error)
}

// NewSource picks an HTTPSource for http(s) locations and a FileSource otherwise.
// Relative file paths are resolved against config.BaseDir.
func NewSource(location string, httpTimeout time.Duration) Source {
	if config.IsURL(location) {
		return NewHTTPSource(location, api.NewHTTPClient(location, httpTimeout))
	}
	return &FileSource{Path: config.ResolvePath(location)}
}

// FileSource reads a table from disk.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string {
	return s.Path
}

func (s *FileSource) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", models.ErrDataUnavailable, s.Path, err)
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", models.ErrDataUnavailable, s.Path, err)
	}
	return data, nil
}

// HTTPSource downloads a table with a GET request.
type HTTPSource struct {
	URL    string
	client *api.HTTPClient
}

// NewHTTPSource builds a source whose client BaseURL is already the full table URL.
func NewHTTPSource(url string, client *api.HTTPClient) *HTTPSource {
	return &HTTPSource{URL: url, client: client}
}

func (s *HTTPSource) Name() string {
	return s.URL
}

func (s *HTTPSource) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Fetch(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", models.ErrDataUnavailable, s.URL, err)
	}
	return data, nil
}
