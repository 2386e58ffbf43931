// Package recommender provides recommendation engine configuration options.
package recommender

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Options defines configuration options for the recommendation engine.
type Options struct {
	// ModelEnabled toggles the trained TF-IDF path. When disabled,
	// training reports "skipped" and lookups fall back to the
	// content-similarity path.
	ModelEnabled bool `json:"model-enabled" mapstructure:"model-enabled"`

	// ModelDir is where the trained artifacts are persisted.
	ModelDir string `json:"model-dir" mapstructure:"model-dir"`

	// DefaultLimit is the default number of recommendations.
	DefaultLimit int `json:"default-limit" mapstructure:"default-limit"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		ModelEnabled: true,
		ModelDir:     "data/model",
		DefaultLimit: 5,
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.DefaultLimit <= 0 {
		return fmt.Errorf("recommender default limit must be positive")
	}
	return nil
}

// AddFlags adds flags for recommender options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.ModelEnabled, "recommender.model-enabled", o.ModelEnabled, "Enable the trained TF-IDF model path")
	fs.StringVar(&o.ModelDir, "recommender.model-dir", o.ModelDir, "Directory for trained model artifacts")
	fs.IntVar(&o.DefaultLimit, "recommender.default-limit", o.DefaultLimit, "Default number of recommendations")
}
