// Package storage provides blob storage configuration options.
package storage

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/luminalib/luminalib/pkg/storage"
)

// Options defines configuration options for blob storage.
type Options struct {
	Provider string `json:"provider" mapstructure:"provider"`
	BaseDir  string `json:"base-dir" mapstructure:"base-dir"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		Provider: "local",
		BaseDir:  "data/uploads",
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	switch o.Provider {
	case "local", "memory":
		return nil
	default:
		return fmt.Errorf("invalid storage provider %q", o.Provider)
	}
}

// AddFlags adds flags for storage options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Provider, "storage.provider", o.Provider, "Blob storage provider (local|memory)")
	fs.StringVar(&o.BaseDir, "storage.base-dir", o.BaseDir, "Base directory for the local provider")
}

// ProviderConfig converts the options into the provider configuration.
func (o *Options) ProviderConfig() *storage.Config {
	return &storage.Config{
		Provider: o.Provider,
		BaseDir:  o.BaseDir,
	}
}
