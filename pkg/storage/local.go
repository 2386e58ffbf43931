package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luminalib/luminalib/pkg/id"
)

type localProvider struct {
	baseDir string
}

// NewLocal creates a filesystem-backed provider rooted at baseDir.
func NewLocal(baseDir string) (Provider, error) {
	if baseDir == "" {
		baseDir = "data/uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create base dir: %w", err)
	}
	return &localProvider{baseDir: baseDir}, nil
}

func (p *localProvider) Name() string { return "local" }

// keyFor derives a fresh storage key, keeping the original extension.
func keyFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return id.New() + ext
}

// path resolves a key inside the base dir, rejecting traversal.
func (p *localProvider) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return filepath.Join(p.baseDir, key), nil
}

func (p *localProvider) Save(_ context.Context, filename string, data []byte) (string, error) {
	key := keyFor(filename)
	path, err := p.path(key)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write blob: %w", err)
	}
	return key, nil
}

func (p *localProvider) Read(_ context.Context, key string) ([]byte, error) {
	path, err := p.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("storage: read blob %s: %w", key, err)
	}
	return data, nil
}

func (p *localProvider) Delete(_ context.Context, key string) error {
	path, err := p.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: delete blob %s: %w", key, err)
	}
	return nil
}
