// Package cache provides answer cache configuration options.
package cache

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Options defines configuration options for the QA answer cache.
type Options struct {
	TTL       time.Duration `json:"ttl" mapstructure:"ttl"`
	KeyPrefix string        `json:"key-prefix" mapstructure:"key-prefix"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		TTL:       10 * time.Minute,
		KeyPrefix: "luminalib:qa:",
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive")
	}
	return nil
}

// AddFlags adds flags for cache options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.DurationVar(&o.TTL, "cache.ttl", o.TTL, "Answer cache TTL")
	fs.StringVar(&o.KeyPrefix, "cache.key-prefix", o.KeyPrefix, "Answer cache key prefix")
}
