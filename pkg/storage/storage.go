// Package storage provides blob storage for uploaded book files.
package storage

import (
	"context"
	"fmt"
)

// Provider stores and retrieves immutable blobs by key.
type Provider interface {
	// Name returns the provider identifier.
	Name() string

	// Save persists data and returns the generated storage key.
	// filename is used only to preserve the file extension.
	Save(ctx context.Context, filename string, data []byte) (string, error)

	// Read returns the blob for key.
	Read(ctx context.Context, key string) ([]byte, error)

	// Delete removes the blob for key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error
}

// Config selects and configures the provider.
type Config struct {
	// Provider is "local" or "memory".
	Provider string

	// BaseDir is the root directory for the local provider.
	BaseDir string
}

// New builds a provider from the configuration.
func New(cfg *Config) (Provider, error) {
	if cfg == nil || cfg.Provider == "" || cfg.Provider == "local" {
		dir := ""
		if cfg != nil {
			dir = cfg.BaseDir
		}
		return NewLocal(dir)
	}

	switch cfg.Provider {
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("storage: unknown provider %q", cfg.Provider)
	}
}
