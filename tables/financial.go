package tables

import (
	"github.com/claryai/tabula/celltext"
	"github.com/claryai/tabula/format"
	"github.com/claryai/tabula/model"
)

// financialParser handles ledger blocks such as invoice line items: cells
// separated by runs of spaces, amounts with currency symbols, and trailing
// Total/Subtotal lines that summarize rather than add data.
type financialParser struct{}

func (financialParser) Format() format.Format { return format.Financial }

// Labels used when a ledger has no header line of its own.
var (
	ledgerHeaders4 = []string{"Item", "Quantity", "Price", "Total"}
	ledgerHeaders3 = []string{"Item", "Value", "Total"}
)

func (financialParser) Parse(block model.RawBlock, cfg Config) *model.StructuredTable {
	var lines []string
	for _, l := range celltext.Lines(block.Text) {
		if !celltext.IsRuleLine(l) {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return Normalize(format.Financial, nil, nil)
	}

	var warnings []string
	headerIdx := ledgerHeaderLine(lines, cfg)
	if headerIdx > 0 {
		warnings = append(warnings, pluralize(headerIdx, "line")+" above the header ignored")
	}

	var headers []string
	if headerIdx >= 0 {
		headers = celltext.SplitMultiSpace(lines[headerIdx], cfg.MinColumnGap)
	}

	var (
		rows    [][]string
		summary int
	)
	for _, l := range lines[headerIdx+1:] {
		if cfg.isSummary(l) {
			summary++
			continue
		}
		cells := celltext.SplitMultiSpace(l, cfg.MinColumnGap)
		if len(cells) == 0 {
			continue
		}
		rows = append(rows, cells)
	}

	if len(headers) == 0 && len(rows) > 0 {
		headers = defaultLedgerHeaders(rows)
	}
	return Normalize(format.Financial, headers, rows, warnings...)
}

// ledgerHeaderLine returns the index of the header line, or -1 when the
// block opens directly with data. A line naming a header keyword wins;
// otherwise the line just before the first data-looking line; otherwise the
// first line.
func ledgerHeaderLine(lines []string, cfg Config) int {
	for i, l := range lines {
		if cfg.hasHeaderKeyword(l) && !cfg.isSummary(l) && !celltext.LooksLikeData(l) {
			return i
		}
	}
	for i, l := range lines {
		if celltext.LooksLikeData(l) {
			return i - 1
		}
	}
	return 0
}

// defaultLedgerHeaders names the columns of a headerless ledger after the
// widest row.
func defaultLedgerHeaders(rows [][]string) []string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	var base []string
	switch {
	case width >= 4:
		base = ledgerHeaders4
	default:
		base = ledgerHeaders3
	}
	if width <= len(base) {
		return append([]string{}, base[:width]...)
	}
	return append(append([]string{}, base...), positionalHeaders(len(base), width)...)
}
