package tables

import (
	"github.com/claryai/tabula/celltext"
	"github.com/claryai/tabula/format"
	"github.com/claryai/tabula/model"
)

// fixedWidthParser handles ASCII tables without a delimiter character.
//
// Column boundaries are inferred once, from the first rule line or from the
// header's word runs, and then applied positionally to every line. Cells
// are display-column slices, so ragged data lines are cut at the same
// offsets as the header rather than re-split one by one.
type fixedWidthParser struct{}

func (fixedWidthParser) Format() format.Format { return format.FixedWidth }

func (fixedWidthParser) Parse(block model.RawBlock, cfg Config) *model.StructuredTable {
	lines := celltext.Lines(block.Text)
	if len(lines) == 0 {
		return Normalize(format.FixedWidth, nil, nil)
	}

	var rules []int
	for i, l := range lines {
		if celltext.IsRuleLine(l) {
			rules = append(rules, i)
		}
	}

	headerIdx := 0
	if len(rules) > 0 {
		headerIdx = headerAroundRule(lines, rules[0])
	}
	if headerIdx < 0 {
		// Nothing but rule lines.
		return Normalize(format.FixedWidth, nil, nil)
	}

	// Every non-rule line other than the header is data, titles above the
	// header included.
	header := lines[headerIdx]
	var dataLines []string
	for i, l := range lines {
		if i != headerIdx && !celltext.IsRuleLine(l) {
			dataLines = append(dataLines, l)
		}
	}

	var warnings []string
	var starts []int
	if len(rules) > 0 {
		starts = celltext.RuleStarts(lines[rules[0]])
	}
	if len(starts) < 2 {
		starts = celltext.WordStarts(header, cfg.MinColumnGap)
	}
	if len(starts) < 2 {
		if single := celltext.WordStarts(header, 1); len(single) > len(starts) {
			starts = single
			warnings = append(warnings, "column boundaries inferred from single-space word gaps")
		}
	}

	if len(starts) == 0 {
		return naiveSplit(header, dataLines, warnings)
	}

	headers := celltext.NewLine(header).Cells(starts)
	if celltext.IsBlank(headers) {
		return naiveSplit(header, dataLines, warnings)
	}

	rows := make([][]string, 0, len(dataLines))
	for _, l := range dataLines {
		cells := celltext.NewLine(l).Cells(starts)
		if celltext.IsBlank(cells) {
			continue
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return Normalize(format.FixedWidth, nil, nil, warnings...)
	}
	return Normalize(format.FixedWidth, headers, rows, warnings...)
}

// headerAroundRule picks the header for a block whose first rule line is at
// ruleIdx: the line just above it, or the first non-rule line below it when
// the rule opens the block. It returns -1 when no such line exists.
func headerAroundRule(lines []string, ruleIdx int) int {
	if ruleIdx > 0 {
		return ruleIdx - 1
	}
	for i := ruleIdx + 1; i < len(lines); i++ {
		if !celltext.IsRuleLine(lines[i]) {
			return i
		}
	}
	return -1
}

// naiveSplit is the low-confidence fallback used when no column boundary
// could be inferred: every line is split on whitespace on its own. A header
// without data lines is not a table.
func naiveSplit(header string, dataLines []string, warnings []string) *model.StructuredTable {
	warnings = append(warnings, "column boundaries could not be inferred; fell back to whitespace splitting")

	headers := celltext.SplitFields(header)
	var rows [][]string
	for _, l := range dataLines {
		if cells := celltext.SplitFields(l); len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	if len(rows) == 0 {
		return Normalize(format.FixedWidth, nil, nil, warnings...)
	}
	return Normalize(format.FixedWidth, headers, rows, warnings...)
}
