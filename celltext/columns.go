package celltext

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

const tabStop = 8

// Line is a text line indexed by display column. East Asian wide runes
// occupy two columns, combining marks none, and tabs expand to the next
// multiple of eight, so offsets agree with what a reader sees in a
// monospaced rendering of the block.
type Line struct {
	runes []rune
	cols  []int // display column where runes[i] starts
	width int
}

// NewLine indexes s by display column.
func NewLine(s string) Line {
	l := Line{
		runes: make([]rune, 0, len(s)),
		cols:  make([]int, 0, len(s)),
	}
	col := 0
	for _, r := range s {
		if r == '\t' {
			next := (col/tabStop + 1) * tabStop
			for ; col < next; col++ {
				l.runes = append(l.runes, ' ')
				l.cols = append(l.cols, col)
			}
			continue
		}
		l.runes = append(l.runes, r)
		l.cols = append(l.cols, col)
		col += RuneWidth(r)
	}
	l.width = col
	return l
}

// RuneWidth returns the number of display columns r occupies.
func RuneWidth(r rune) int {
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// Width returns the display width of the line.
func (l Line) Width() int {
	return l.width
}

// String returns the line with tabs expanded.
func (l Line) String() string {
	return string(l.runes)
}

// Slice returns the runes whose display column lies in [from, to). A
// negative to means the end of the line. Offsets past the line are clipped.
func (l Line) Slice(from, to int) string {
	if to < 0 || to > l.width {
		to = l.width
	}
	if from < 0 {
		from = 0
	}
	if from >= to {
		return ""
	}

	var sb strings.Builder
	for i, r := range l.runes {
		c := l.cols[i]
		if c >= to {
			break
		}
		if c >= from {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Cells slices the line at the given column starts. The first cell begins
// at column zero so leading text is never lost; the last runs to the end of
// the line. Each cell is cleaned and stripped of '|' borders.
func (l Line) Cells(starts []int) []string {
	cells := make([]string, len(starts))
	for i := range starts {
		from := starts[i]
		if i == 0 {
			from = 0
		}
		to := -1
		if i+1 < len(starts) {
			to = starts[i+1]
		}
		cells[i] = trimBorders(l.Slice(from, to))
	}
	return cells
}

func trimBorders(s string) string {
	return Clean(strings.Trim(Clean(s), "|"))
}

// WordStarts returns the display columns at which runs of text begin, where
// runs are separated by at least minGap spaces. With minGap 1 every word
// starts a run.
func WordStarts(s string, minGap int) []int {
	if minGap < 1 {
		minGap = 1
	}
	l := NewLine(s)

	var starts []int
	gap := minGap // line start acts as a gap
	for i, r := range l.runes {
		if unicode.IsSpace(r) {
			gap += max(RuneWidth(r), 1)
			continue
		}
		if gap >= minGap {
			starts = append(starts, l.cols[i])
		}
		gap = 0
	}
	return starts
}

// RuleStarts returns the display columns at which column segments of a rule
// line begin. A run of '-' or '=' starts a column when it follows the line
// start, a space, or a '+'/'|' junction:
//
//	"-----  -----"      -> [0 7]
//	"+-----+-----+"     -> [1 7]
func RuleStarts(s string) []int {
	l := NewLine(s)

	var starts []int
	inRun := false
	for i, r := range l.runes {
		isDash := r == '-' || r == '='
		if isDash && !inRun {
			starts = append(starts, l.cols[i])
		}
		inRun = isDash
	}
	return starts
}
