package tabula

import (
	"encoding/json"
	"fmt"

	"github.com/claryai/tabula/cache"
	"github.com/claryai/tabula/format"
	"github.com/claryai/tabula/model"
	"github.com/claryai/tabula/tables"
)

// Extractor provides a fluent interface for extracting one table block.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	block model.RawBlock

	// Configuration
	options ExtractOptions
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		block:   e.block,
		options: e.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Markup flags the block as an HTML fragment.
//
// Example:
//
//	tbl := tabula.FromText(fragment).Markup().Extract()
func (e *Extractor) Markup() *Extractor {
	newExt := e.clone()
	newExt.block.Markup = true
	return newExt
}

// As bypasses classification and parses the block as f. Unknown restores
// classification.
//
// Example:
//
//	tbl := tabula.FromText(block).As(format.FixedWidth).Extract()
func (e *Extractor) As(f format.Format) *Extractor {
	newExt := e.clone()
	newExt.options.format = f
	return newExt
}

// WithConfig replaces the parser configuration. Zero fields fall back to
// tables.DefaultConfig.
func (e *Extractor) WithConfig(cfg tables.Config) *Extractor {
	newExt := e.clone()
	newExt.options.config = cfg
	return newExt
}

// WithCache memoizes the result in c. The cache may be shared by any number
// of extractors.
func (e *Extractor) WithCache(c *cache.Cache) *Extractor {
	newExt := e.clone()
	newExt.options.cache = c
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Classify returns the format the block will be parsed as.
func (e *Extractor) Classify() format.Format {
	if e.options.format != format.Unknown {
		return e.options.format
	}
	return tables.Classify(e.block, e.options.config)
}

// Extract parses the block. It never returns nil and never panics; a block
// that holds no table comes back with Error set.
//
// Example:
//
//	tbl := tabula.FromText(block).Extract()
//	if tbl.OK() {
//	    fmt.Println(tbl.ToMarkdown())
//	}
func (e *Extractor) Extract() *model.StructuredTable {
	return extract(e.block, e.options)
}

// JSON parses the block and encodes the result.
func (e *Extractor) JSON() ([]byte, error) {
	out, err := json.Marshal(e.Extract())
	if err != nil {
		return nil, fmt.Errorf("encoding table: %w", err)
	}
	return out, nil
}

// ToMarkdown parses the block and renders it as a markdown table. A block
// without a table yields an empty string.
func (e *Extractor) ToMarkdown() string {
	return e.Extract().ToMarkdown()
}

// ToCSV parses the block and renders it as CSV.
func (e *Extractor) ToCSV() string {
	return e.Extract().ToCSV()
}

func extract(block model.RawBlock, opts ExtractOptions) *model.StructuredTable {
	parse := func() *model.StructuredTable {
		if opts.format != format.Unknown {
			return tables.ParseAs(block, opts.format, opts.config)
		}
		return tables.ParseWithConfig(block, opts.config)
	}
	if opts.cache == nil {
		return parse()
	}
	return opts.cache.GetOrParse(block, opts.format, opts.config, parse)
}
