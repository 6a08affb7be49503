// Package model defines the input and output values of table extraction.
//
// A [RawBlock] is a segment of text or markup handed over by the document
// partitioner. Extraction turns it into a [StructuredTable]:
//
//	t := tables.Parse(model.NewTextBlock(text))
//	if !t.OK() {
//	    // not a table; treat the block as plain text
//	}
//
// # Records
//
// Rows are [Record] values: ordered header/cell pairs. Headers are not
// required to be unique, so a Record is a slice rather than a map. It still
// encodes to a JSON object whose keys follow header order:
//
//	{"type":"Table","headers":["Name","Age"],
//	 "data":[{"Name":"John","Age":"30"}],"num_rows":1,"num_cols":2}
//
// # Failures
//
// Extraction never returns a Go error. A block that holds no recoverable
// rows yields a table whose Error field is set and whose headers and rows
// are empty. Low-confidence extraction is reported through Warnings while
// the data is still returned.
//
// # Export
//
// Tables render to markdown and CSV via [StructuredTable.ToMarkdown] and
// [StructuredTable.ToCSV].
package model
