// Package options defines the shared option-set contract.
package options

import (
	"github.com/spf13/pflag"
)

// IOptions is implemented by every per-concern options struct.
type IOptions interface {
	// Validate checks the option values.
	Validate() error

	// AddFlags registers the options on the flag set.
	AddFlags(fs *pflag.FlagSet)
}

// Validate runs Validate over a list of option sets and collects errors.
func Validate(opts ...IOptions) []error {
	var errs []error
	for _, o := range opts {
		if err := o.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
