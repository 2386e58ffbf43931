// Package jwt provides token signing configuration options.
package jwt

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Options defines configuration options for JWT signing.
type Options struct {
	Secret   string        `json:"secret" mapstructure:"secret"`
	Issuer   string        `json:"issuer" mapstructure:"issuer"`
	Lifetime time.Duration `json:"lifetime" mapstructure:"lifetime"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		Secret:   "",
		Issuer:   "luminalib",
		Lifetime: 60 * time.Minute,
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.Secret == "" {
		return fmt.Errorf("jwt secret must not be empty")
	}
	if o.Lifetime <= 0 {
		return fmt.Errorf("jwt lifetime must be positive")
	}
	return nil
}

// AddFlags adds flags for JWT options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Secret, "jwt.secret", o.Secret, "JWT signing secret")
	fs.StringVar(&o.Issuer, "jwt.issuer", o.Issuer, "JWT issuer claim")
	fs.DurationVar(&o.Lifetime, "jwt.lifetime", o.Lifetime, "Access token lifetime")
}
