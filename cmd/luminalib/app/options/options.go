// Package options contains flags and options for initializing the library server.
package options

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/luminalib/luminalib/internal/library"
	cacheopts "github.com/luminalib/luminalib/pkg/options/cache"
	dbopts "github.com/luminalib/luminalib/pkg/options/database"
	httpopts "github.com/luminalib/luminalib/pkg/options/http"
	ingestopts "github.com/luminalib/luminalib/pkg/options/ingest"
	jwtopts "github.com/luminalib/luminalib/pkg/options/jwt"
	llmopts "github.com/luminalib/luminalib/pkg/options/llm"
	logopts "github.com/luminalib/luminalib/pkg/options/logger"
	recopts "github.com/luminalib/luminalib/pkg/options/recommender"
	redisopts "github.com/luminalib/luminalib/pkg/options/redis"
	storageopts "github.com/luminalib/luminalib/pkg/options/storage"
	genericopts "github.com/luminalib/luminalib/pkg/options"
)

// ServerOptions contains the configuration options for the server.
type ServerOptions struct {
	// HTTPOptions contains HTTP server configuration.
	HTTPOptions *httpopts.Options `json:"http" mapstructure:"http"`

	// LogOptions contains logger configuration.
	LogOptions *logopts.Options `json:"log" mapstructure:"log"`

	// DatabaseOptions contains record store configuration.
	DatabaseOptions *dbopts.Options `json:"database" mapstructure:"database"`

	// RedisOptions contains the optional answer cache backend.
	RedisOptions *redisopts.Options `json:"redis" mapstructure:"redis"`

	// JWTOptions contains token signing configuration.
	JWTOptions *jwtopts.Options `json:"jwt" mapstructure:"jwt"`

	// LLMOptions contains language model provider configuration.
	LLMOptions *llmopts.Options `json:"llm" mapstructure:"llm"`

	// StorageOptions contains blob storage configuration.
	StorageOptions *storageopts.Options `json:"storage" mapstructure:"storage"`

	// CacheOptions contains answer cache tuning.
	CacheOptions *cacheopts.Options `json:"cache" mapstructure:"cache"`

	// IngestOptions contains ingestion pipeline tuning.
	IngestOptions *ingestopts.Options `json:"ingest" mapstructure:"ingest"`

	// RecommenderOptions contains recommendation engine configuration.
	RecommenderOptions *recopts.Options `json:"recommender" mapstructure:"recommender"`
}

// NewServerOptions creates a ServerOptions instance with default values.
func NewServerOptions() *ServerOptions {
	return &ServerOptions{
		HTTPOptions:        httpopts.NewOptions(),
		LogOptions:         logopts.NewOptions(),
		DatabaseOptions:    dbopts.NewOptions(),
		RedisOptions:       redisopts.NewOptions(),
		JWTOptions:         jwtopts.NewOptions(),
		LLMOptions:         llmopts.NewOptions(),
		StorageOptions:     storageopts.NewOptions(),
		CacheOptions:       cacheopts.NewOptions(),
		IngestOptions:      ingestopts.NewOptions(),
		RecommenderOptions: recopts.NewOptions(),
	}
}

// AddFlags adds all option flags to the given flag set.
func (o *ServerOptions) AddFlags(fs *pflag.FlagSet) {
	o.HTTPOptions.AddFlags(fs)
	o.LogOptions.AddFlags(fs)
	o.DatabaseOptions.AddFlags(fs)
	o.RedisOptions.AddFlags(fs)
	o.JWTOptions.AddFlags(fs)
	o.LLMOptions.AddFlags(fs)
	o.StorageOptions.AddFlags(fs)
	o.CacheOptions.AddFlags(fs)
	o.IngestOptions.AddFlags(fs)
	o.RecommenderOptions.AddFlags(fs)
}

// Complete completes all the required options.
func (o *ServerOptions) Complete() error {
	return nil
}

// Validate checks whether the options in ServerOptions are valid.
func (o *ServerOptions) Validate() error {
	errs := genericopts.Validate(
		o.HTTPOptions,
		o.LogOptions,
		o.DatabaseOptions,
		o.RedisOptions,
		o.JWTOptions,
		o.LLMOptions,
		o.StorageOptions,
		o.CacheOptions,
		o.IngestOptions,
		o.RecommenderOptions,
	)
	return errors.Join(errs...)
}

// Config builds a library.Config based on ServerOptions.
func (o *ServerOptions) Config() (*library.Config, error) {
	return &library.Config{
		HTTPOptions:        o.HTTPOptions,
		LogOptions:         o.LogOptions,
		DatabaseOptions:    o.DatabaseOptions,
		RedisOptions:       o.RedisOptions,
		JWTOptions:         o.JWTOptions,
		LLMOptions:         o.LLMOptions,
		StorageOptions:     o.StorageOptions,
		CacheOptions:       o.CacheOptions,
		IngestOptions:      o.IngestOptions,
		RecommenderOptions: o.RecommenderOptions,
	}, nil
}
