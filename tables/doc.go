// Package tables recovers row/column structure from text and markup blocks.
//
// A candidate block goes through three stages:
//
//  1. Classification: [Classify] walks [Rules] in priority order and picks
//     exactly one [format.Format].
//  2. Parsing: the [Parser] registered for that format extracts a header
//     line and raw rows.
//  3. Normalization: [Normalize] pads or truncates every row to the header
//     width and builds the [model.StructuredTable].
//
// The common entry point is [Parse]:
//
//	t := tables.Parse(model.NewTextBlock(text))
//	if t.OK() {
//	    fmt.Println(t.ToMarkdown())
//	}
//
// # Parsers
//
// One parser exists per format, tried in this order:
//
//   - Markup - HTML fragments (blocks flagged as markup)
//   - Markdown - pipe-delimited rows with a separator row
//   - Financial - ledgers with currency amounts and Total/Subtotal lines
//   - SpaceSeparated - columns separated by runs of two or more spaces
//   - FixedWidth - everything else, including ASCII grids bounded by
//     "----", "====" or "+--+" rule lines
//
// # Column Boundaries
//
// The fixed-width parser derives column offsets once, from the first rule
// line or from the header's word runs, and slices every line at those
// offsets by display column. Ragged data lines are therefore cut
// consistently instead of being split line by line.
//
// # Configuration
//
// Parser behavior is controlled by [Config]:
//
//	cfg := tables.DefaultConfig()
//	cfg.MinColumnGap = 3
//	t := tables.ParseWithConfig(block, cfg)
//
// # Errors
//
// Parsing never returns a Go error and never panics. A block with no
// recoverable rows yields a table whose Error is set; degraded extraction,
// such as falling back to whitespace splitting, is reported in Warnings.
//
// All parsers are stateless and safe for concurrent use.
package tables
