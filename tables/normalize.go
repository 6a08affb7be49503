package tables

import (
	"fmt"

	"github.com/claryai/tabula/format"
	"github.com/claryai/tabula/model"
)

// Normalize reconciles raw rows with the header count and builds the final
// table. Short rows are padded with empty cells and long rows truncated, so
// every record carries exactly one cell per header.
//
// When rows exist without headers, positional headers "Column 1".."Column N"
// are generated for the widest row. When neither exists the table carries
// model.NoDataError.
func Normalize(f format.Format, headers []string, rows [][]string, warnings ...string) *model.StructuredTable {
	if len(headers) == 0 && len(rows) == 0 {
		t := model.Failed(f, model.NoDataError)
		t.Warnings = nonEmpty(warnings)
		return t
	}

	if len(headers) == 0 {
		width := 0
		for _, row := range rows {
			width = max(width, len(row))
		}
		if width == 0 {
			return Normalize(f, nil, nil, warnings...)
		}
		headers = positionalHeaders(0, width)
		warnings = append(warnings, "no header row found; generated positional column names")
	}

	t := &model.StructuredTable{
		Headers:  append([]string{}, headers...),
		Rows:     make([]model.Record, 0, len(rows)),
		Warnings: nonEmpty(warnings),
		Format:   f,
	}
	for _, row := range rows {
		t.Rows = append(t.Rows, model.NewRecord(t.Headers, fitRow(row, len(t.Headers))))
	}
	return t
}

// fitRow pads or truncates a row to n cells.
func fitRow(row []string, n int) []string {
	out := make([]string, n)
	copy(out, row)
	return out
}

func positionalHeaders(from, to int) []string {
	headers := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		headers = append(headers, fmt.Sprintf("Column %d", i+1))
	}
	return headers
}

func nonEmpty(warnings []string) []string {
	var out []string
	for _, w := range warnings {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
