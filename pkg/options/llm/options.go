// Package llm provides language model provider configuration options.
package llm

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/luminalib/luminalib/pkg/llm"
)

// Options defines configuration options for the LLM provider.
type Options struct {
	Provider string        `json:"provider" mapstructure:"provider"`
	BaseURL  string        `json:"base-url" mapstructure:"base-url"`
	APIKey   string        `json:"api-key" mapstructure:"api-key"`
	Model    string        `json:"model" mapstructure:"model"`
	Timeout  time.Duration `json:"timeout" mapstructure:"timeout"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		Provider: "mock",
		BaseURL:  "",
		APIKey:   "",
		Model:    "gpt-4o-mini",
		Timeout:  30 * time.Second,
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	switch o.Provider {
	case "mock":
		return nil
	case "http":
		if o.BaseURL == "" {
			return fmt.Errorf("llm.base-url is required for the http provider")
		}
		return nil
	default:
		return fmt.Errorf("invalid llm provider %q", o.Provider)
	}
}

// AddFlags adds flags for LLM options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Provider, "llm.provider", o.Provider, "LLM provider (mock|http)")
	fs.StringVar(&o.BaseURL, "llm.base-url", o.BaseURL, "OpenAI-compatible endpoint base URL")
	fs.StringVar(&o.APIKey, "llm.api-key", o.APIKey, "API key for the http provider")
	fs.StringVar(&o.Model, "llm.model", o.Model, "Model name for the http provider")
	fs.DurationVar(&o.Timeout, "llm.timeout", o.Timeout, "Per-request timeout for the http provider")
}

// ProviderConfig converts the options into the provider configuration.
func (o *Options) ProviderConfig() *llm.Config {
	return &llm.Config{
		Provider: o.Provider,
		BaseURL:  o.BaseURL,
		APIKey:   o.APIKey,
		Model:    o.Model,
		Timeout:  o.Timeout,
	}
}
