package model

// RawBlock is a candidate table segment produced by the upstream
// partitioner. The engine only reads it.
type RawBlock struct {
	Text   string
	Markup bool // Block came from an HTML table element
}

// NewTextBlock wraps plain text.
func NewTextBlock(text string) RawBlock {
	return RawBlock{Text: text}
}

// NewMarkupBlock wraps an HTML table fragment.
func NewMarkupBlock(html string) RawBlock {
	return RawBlock{Text: html, Markup: true}
}

// IsEmpty reports whether the block carries no visible characters.
func (b RawBlock) IsEmpty() bool {
	for _, r := range b.Text {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
		default:
			return false
		}
	}
	return true
}
