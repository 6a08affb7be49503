// Package celltext provides the line and cell primitives shared by the
// table parsers: whitespace-run splitting, rule line detection, numeric and
// currency token recognition, and display-column slicing.
package celltext

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// DefaultMinGap is the number of consecutive spaces that separates columns.
const DefaultMinGap = 2

// CurrencySymbols lists the symbols recognized as money markers.
const CurrencySymbols = "$€£¥₹₩₽¢"

// Lines splits text into lines, dropping blank ones. Trailing whitespace and
// carriage returns are removed; leading indentation is kept because column
// offsets depend on it.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRightFunc(l, unicode.IsSpace)
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// Clean normalizes a cell: NFC composition, non-breaking and tab characters
// mapped to plain spaces, surrounding whitespace trimmed.
func Clean(s string) string {
	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\u00a0', '\u2007', '\u202f', '\t':
			return ' '
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// CollapseSpace cleans s and folds internal whitespace runs to one space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(Clean(s)), " ")
}

// SplitMultiSpace splits a line on whitespace runs of at least minGap
// characters. A tab always counts as a full gap. Single spaces stay inside
// the cell, so "Unit Price" remains one cell.
func SplitMultiSpace(line string, minGap int) []string {
	if minGap < 1 {
		minGap = DefaultMinGap
	}

	var (
		cells  []string
		cur    strings.Builder
		gap    strings.Builder
		gapLen int
	)
	flush := func() {
		if c := Clean(cur.String()); c != "" {
			cells = append(cells, c)
		}
		cur.Reset()
	}

	for _, r := range line {
		if unicode.IsSpace(r) {
			if r == '\t' {
				gapLen += minGap
			} else {
				gapLen++
			}
			gap.WriteRune(r)
			continue
		}
		if gapLen > 0 {
			if gapLen >= minGap {
				flush()
			} else {
				cur.WriteString(gap.String())
			}
			gap.Reset()
			gapLen = 0
		}
		cur.WriteRune(r)
	}
	flush()
	return cells
}

// SplitFields splits a line on any whitespace.
func SplitFields(line string) []string {
	fields := strings.Fields(line)
	for i, f := range fields {
		fields[i] = Clean(f)
	}
	return fields
}

// HasColumnGap reports whether the line contains a run of at least minGap
// spaces anywhere, leading indentation included. A tab is a full gap.
func HasColumnGap(line string, minGap int) bool {
	if minGap < 1 {
		minGap = 1
	}
	return strings.ContainsRune(line, '\t') || strings.Contains(line, strings.Repeat(" ", minGap))
}

// IsRuleLine reports whether a line is an ASCII rule: only '-', '=', '+',
// '|' and spaces, with at least one '-' or '='.
func IsRuleLine(line string) bool {
	return isRule(line, "-=+| ")
}

// IsMarkdownRule reports whether a line is a markdown separator row such as
// "|---|:--:|" or a grid border such as "+----+----+".
func IsMarkdownRule(line string) bool {
	return isRule(line, "-=+|: ")
}

func isRule(line, allowed string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	hasDash := false
	for _, r := range s {
		if !strings.ContainsRune(allowed, r) {
			return false
		}
		if r == '-' || r == '=' {
			hasDash = true
		}
	}
	return hasDash
}

// HasCurrency reports whether s contains a currency symbol.
func HasCurrency(s string) bool {
	return strings.ContainsAny(s, CurrencySymbols)
}

var (
	numberPattern = regexp.MustCompile(`^[-+]?\(?[-+]?(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?\)?%?$`)
	isoCurrency   = regexp.MustCompile(`^(?:USD|EUR|GBP|JPY|INR|CAD|AUD|CHF|CNY)$`)
)

// IsNumeric reports whether tok is a plain number: "10", "1,234.50",
// "(12.00)", "-3", "7.5%".
func IsNumeric(tok string) bool {
	return numberPattern.MatchString(strings.TrimSpace(tok))
}

// IsCurrencyAmount reports whether tok is a money amount such as "$25.00",
// "-€3", "25.00€" or "25.00 EUR".
func IsCurrencyAmount(tok string) bool {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return false
	}

	if fields := strings.Fields(tok); len(fields) == 2 {
		if isoCurrency.MatchString(fields[1]) {
			return IsNumeric(fields[0])
		}
		if isoCurrency.MatchString(fields[0]) {
			return IsNumeric(fields[1])
		}
		return false
	}

	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(CurrencySymbols, r) {
			return -1
		}
		return r
	}, tok)
	if stripped == tok {
		return false
	}
	return IsNumeric(stripped)
}

// LooksLikeData reports whether the line carries at least one numeric or
// currency token.
func LooksLikeData(line string) bool {
	for _, f := range strings.Fields(line) {
		f = strings.TrimRight(f, ":;,")
		if IsNumeric(f) || IsCurrencyAmount(f) {
			return true
		}
	}
	return false
}

// IsBlank reports whether every cell is empty.
func IsBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
