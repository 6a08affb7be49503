package tables

import (
	"fmt"
	"strings"

	"github.com/claryai/tabula/celltext"
)

// Config holds parser configuration. The zero value of a field means "use
// the default"; see DefaultConfig.
type Config struct {
	// Minimum run of spaces that separates two columns
	MinColumnGap int `yaml:"min_column_gap"`

	// Words that mark the header line of a financial table
	HeaderKeywords []string `yaml:"header_keywords"`

	// Leading words of summary rows excluded from financial data
	SummaryPrefixes []string `yaml:"summary_prefixes"`

	// Token that, together with a currency symbol, selects the financial parser
	TotalToken string `yaml:"total_token"`

	// Upper bound on colspan expansion in markup tables
	MaxColSpan int `yaml:"max_colspan"`
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MinColumnGap:    celltext.DefaultMinGap,
		HeaderKeywords:  []string{"Item", "Description", "Product"},
		SummaryPrefixes: []string{"Total", "Subtotal", "Grand Total"},
		TotalToken:      "Total",
		MaxColSpan:      64,
	}
}

// WithDefaults fills unset fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.MinColumnGap <= 0 {
		c.MinColumnGap = def.MinColumnGap
	}
	if len(c.HeaderKeywords) == 0 {
		c.HeaderKeywords = def.HeaderKeywords
	}
	if len(c.SummaryPrefixes) == 0 {
		c.SummaryPrefixes = def.SummaryPrefixes
	}
	if c.TotalToken == "" {
		c.TotalToken = def.TotalToken
	}
	if c.MaxColSpan <= 0 {
		c.MaxColSpan = def.MaxColSpan
	}
	return c
}

// Validate rejects settings that cannot produce sensible tables.
func (c Config) Validate() error {
	if c.MinColumnGap < 0 {
		return fmt.Errorf("min_column_gap must not be negative, got %d", c.MinColumnGap)
	}
	if c.MinColumnGap > 16 {
		return fmt.Errorf("min_column_gap %d is larger than any realistic column gap", c.MinColumnGap)
	}
	if c.MaxColSpan < 0 {
		return fmt.Errorf("max_colspan must not be negative, got %d", c.MaxColSpan)
	}
	for _, k := range c.HeaderKeywords {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("header_keywords contains an empty keyword")
		}
	}
	for _, p := range c.SummaryPrefixes {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("summary_prefixes contains an empty prefix")
		}
	}
	return nil
}

// Fingerprint returns a stable string identifying the effective settings.
func (c Config) Fingerprint() string {
	c = c.WithDefaults()
	return fmt.Sprintf("gap=%d;hdr=%s;sum=%s;tot=%s;span=%d",
		c.MinColumnGap,
		strings.Join(c.HeaderKeywords, "\x1f"),
		strings.Join(c.SummaryPrefixes, "\x1f"),
		c.TotalToken,
		c.MaxColSpan)
}

func (c Config) isSummary(line string) bool {
	s := strings.ToLower(strings.TrimSpace(line))
	for _, p := range c.SummaryPrefixes {
		if strings.HasPrefix(s, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func (c Config) hasHeaderKeyword(line string) bool {
	for _, k := range c.HeaderKeywords {
		if strings.Contains(line, k) {
			return true
		}
	}
	return false
}
