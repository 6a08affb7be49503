package tables

import (
	"github.com/claryai/tabula/celltext"
	"github.com/claryai/tabula/format"
	"github.com/claryai/tabula/model"
)

// spaceSeparatedParser handles blocks whose columns are separated by runs
// of spaces: the first line is the header and every later line a row.
type spaceSeparatedParser struct{}

func (spaceSeparatedParser) Format() format.Format { return format.SpaceSeparated }

func (spaceSeparatedParser) Parse(block model.RawBlock, cfg Config) *model.StructuredTable {
	var (
		headers    []string
		headerSeen bool
		rows       [][]string
	)
	for _, l := range celltext.Lines(block.Text) {
		// Underlines such as "----  ---" only decorate the header.
		if celltext.IsRuleLine(l) {
			continue
		}
		cells := celltext.SplitMultiSpace(l, cfg.MinColumnGap)
		if !headerSeen {
			headers = cells
			headerSeen = true
			continue
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return Normalize(format.SpaceSeparated, headers, rows)
}
