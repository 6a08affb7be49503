// Package tabula turns candidate table blocks cut from documents into
// normalized, JSON-ready tables.
//
// Basic usage:
//
//	tbl := tabula.FromText(block).Extract()
//	if !tbl.OK() {
//	    // treat the block as plain text
//	}
//
// With options:
//
//	tbl := tabula.FromMarkup(fragment).
//	    WithConfig(cfg).
//	    Extract()
//
// Many blocks at once:
//
//	results, err := tabula.ExtractAll(ctx, blocks, tabula.WithConcurrency(8))
//
// The tables and format packages expose the classifier and the individual
// parsers for callers that need finer control.
package tabula

import (
	"github.com/claryai/tabula/model"
)

// FromText returns an Extractor for a plain-text block.
//
// Example:
//
//	tbl := tabula.FromText("| Name | Age |\n|---|---|\n| John | 30 |").Extract()
func FromText(text string) *Extractor {
	return FromBlock(model.NewTextBlock(text))
}

// FromMarkup returns an Extractor for an HTML fragment.
//
// Example:
//
//	tbl := tabula.FromMarkup("<table><tr><th>A</th></tr><tr><td>1</td></tr></table>").Extract()
func FromMarkup(html string) *Extractor {
	return FromBlock(model.NewMarkupBlock(html))
}

// FromBlock returns an Extractor for a block supplied by a document
// partitioner.
func FromBlock(block model.RawBlock) *Extractor {
	return &Extractor{
		block:   block,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	out := tabula.Must(tabula.FromText(block).JSON())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
