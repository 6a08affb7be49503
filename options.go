package tabula

import (
	"log/slog"

	"github.com/claryai/tabula/cache"
	"github.com/claryai/tabula/format"
	"github.com/claryai/tabula/tables"
)

// ExtractOptions holds configuration for table extraction.
type ExtractOptions struct {
	// Forced layout family; Unknown means classify
	format format.Format

	// Parser settings
	config tables.Config

	// Optional memo of earlier results
	cache *cache.Cache
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		format: format.Unknown,
		config: tables.DefaultConfig(),
	}
}

// clone creates a deep copy of ExtractOptions. The cache is shared.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o
	newOpts.config.HeaderKeywords = append([]string(nil), o.config.HeaderKeywords...)
	newOpts.config.SummaryPrefixes = append([]string(nil), o.config.SummaryPrefixes...)
	return newOpts
}

// DefaultConcurrency bounds the number of blocks ExtractAll parses at once.
const DefaultConcurrency = 8

// batchOptions configures ExtractAll.
type batchOptions struct {
	ExtractOptions
	concurrency int
	logger      *slog.Logger
}

// Option configures ExtractAll.
type Option func(*batchOptions)

// WithConcurrency limits how many blocks are parsed at once. Values below
// one select DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(o *batchOptions) {
		o.concurrency = n
	}
}

// WithConfig sets the parser configuration.
func WithConfig(cfg tables.Config) Option {
	return func(o *batchOptions) {
		o.config = cfg
	}
}

// WithFormat forces every block through the parser for f.
func WithFormat(f format.Format) Option {
	return func(o *batchOptions) {
		o.format = f
	}
}

// WithCache memoizes results in c.
func WithCache(c *cache.Cache) Option {
	return func(o *batchOptions) {
		o.cache = c
	}
}

// WithLogger sets the logger used for per-block diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *batchOptions) {
		o.logger = l
	}
}

func newBatchOptions(opts []Option) batchOptions {
	o := batchOptions{
		ExtractOptions: defaultOptions(),
		concurrency:    DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.concurrency < 1 {
		o.concurrency = DefaultConcurrency
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
