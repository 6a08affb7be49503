package tables

import (
	"strings"

	"github.com/claryai/tabula/celltext"
	"github.com/claryai/tabula/format"
	"github.com/claryai/tabula/model"
)

// Rule is one entry of the classification order: when Match reports true,
// the block is handled by the parser for Format.
type Rule struct {
	Name   string
	Format format.Format
	Match  func(block model.RawBlock, cfg Config) bool
}

// Rules returns the classification rules in priority order. More specific
// rules come first; the last rule always matches.
func Rules() []Rule {
	return []Rule{
		{Name: "markup flag", Format: format.Markup, Match: isMarkupBlock},
		{Name: "pipes with rule row", Format: format.Markdown, Match: isMarkdownBlock},
		{Name: "currency with total", Format: format.Financial, Match: isFinancialBlock},
		{Name: "multi-space columns", Format: format.SpaceSeparated, Match: isSpaceSeparatedBlock},
		{Name: "catch-all", Format: format.FixedWidth, Match: func(model.RawBlock, Config) bool { return true }},
	}
}

// Classify selects the format whose parser should handle the block. It is a
// pure function of the block content and cfg.
func Classify(block model.RawBlock, cfg Config) format.Format {
	cfg = cfg.WithDefaults()
	for _, rule := range Rules() {
		if rule.Match(block, cfg) {
			return rule.Format
		}
	}
	return format.FixedWidth
}

func isMarkupBlock(block model.RawBlock, _ Config) bool {
	return block.Markup
}

func isMarkdownBlock(block model.RawBlock, _ Config) bool {
	if !strings.Contains(block.Text, "|") {
		return false
	}
	for _, line := range celltext.Lines(block.Text) {
		if celltext.IsMarkdownRule(line) {
			return true
		}
	}
	return false
}

func isFinancialBlock(block model.RawBlock, cfg Config) bool {
	return celltext.HasCurrency(block.Text) && strings.Contains(block.Text, cfg.TotalToken)
}

func isSpaceSeparatedBlock(block model.RawBlock, cfg Config) bool {
	lines := celltext.Lines(block.Text)
	if len(lines) < 2 {
		return false
	}
	for _, line := range lines {
		if celltext.HasColumnGap(line, cfg.MinColumnGap) {
			return true
		}
	}
	return false
}
