// Package ingest provides ingestion pipeline configuration options.
package ingest

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Options defines configuration options for the ingestion pipeline.
type Options struct {
	// ChunkSize is the chunk window size in runes.
	ChunkSize int `json:"chunk-size" mapstructure:"chunk-size"`

	// TopK is the number of chunks retrieved per question.
	TopK int `json:"top-k" mapstructure:"top-k"`

	// PoolCapacity bounds the background worker pool.
	PoolCapacity int `json:"pool-capacity" mapstructure:"pool-capacity"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		ChunkSize:    500,
		TopK:         4,
		PoolCapacity: 64,
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.ChunkSize <= 0 {
		return fmt.Errorf("ingest chunk size must be positive")
	}
	if o.TopK <= 0 {
		return fmt.Errorf("ingest top-k must be positive")
	}
	if o.PoolCapacity <= 0 {
		return fmt.Errorf("ingest pool capacity must be positive")
	}
	return nil
}

// AddFlags adds flags for ingestion options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.ChunkSize, "ingest.chunk-size", o.ChunkSize, "Chunk window size in runes")
	fs.IntVar(&o.TopK, "ingest.top-k", o.TopK, "Number of chunks retrieved per question")
	fs.IntVar(&o.PoolCapacity, "ingest.pool-capacity", o.PoolCapacity, "Background worker pool capacity")
}
