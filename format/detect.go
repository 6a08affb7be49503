// Package format identifies the layout family of a candidate table block.
package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents a table layout family. Each family is handled by exactly
// one parser in the tables package.
type Format int

const (
	// Unknown indicates that no format was chosen.
	Unknown Format = iota
	// Markup indicates an HTML table fragment.
	Markup
	// Markdown indicates a pipe-delimited table with a rule row.
	Markdown
	// Financial indicates a ledger block with currency amounts and totals.
	Financial
	// SpaceSeparated indicates columns separated by runs of spaces.
	SpaceSeparated
	// FixedWidth indicates an ASCII grid aligned on character columns.
	FixedWidth
)

// All lists the concrete formats in classification priority order.
var All = []Format{Markup, Markdown, Financial, SpaceSeparated, FixedWidth}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Markup:
		return "Markup"
	case Markdown:
		return "Markdown"
	case Financial:
		return "Financial"
	case SpaceSeparated:
		return "SpaceSeparated"
	case FixedWidth:
		return "FixedWidth"
	default:
		return "Unknown"
	}
}

// Parse resolves a format name. Matching is case-insensitive and accepts a
// few common aliases ("html", "md", "ledger", "spaced", "ascii").
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "markup", "html":
		return Markup, nil
	case "markdown", "md", "pipe":
		return Markdown, nil
	case "financial", "ledger":
		return Financial, nil
	case "spaceseparated", "space-separated", "spaced":
		return SpaceSeparated, nil
	case "fixedwidth", "fixed-width", "ascii":
		return FixedWidth, nil
	case "", "auto", "unknown":
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("unknown table format %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Detect guesses the format hint from a filename extension. Only markup and
// markdown files can be identified this way; everything else is Unknown and
// left to the classifier.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm", ".xhtml":
		return Markup
	case ".md", ".markdown":
		return Markdown
	default:
		return Unknown
	}
}

// DetectMarkup reports whether data looks like an HTML table fragment.
// Only the first kilobyte is inspected.
func DetectMarkup(data []byte) bool {
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) || data[start] != '<' {
		return false
	}
	data = data[start:]

	head := strings.ToLower(string(data[:min(1024, len(data))]))
	if strings.Contains(head, "<table") || strings.Contains(head, "<tr") {
		return true
	}
	if strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html") {
		return strings.Contains(strings.ToLower(string(data)), "<table")
	}
	return false
}

// DetectFromContent combines the filename hint with a content sniff. The
// returned bool is true when the block should be flagged as markup.
func DetectFromContent(filename string, data []byte) (Format, bool) {
	hint := Detect(filename)
	if hint == Markup || DetectMarkup(data) {
		return Markup, true
	}
	return hint, false
}
