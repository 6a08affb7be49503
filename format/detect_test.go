package format

import (
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Markup, "Markup"},
		{Markdown, "Markdown"},
		{Financial, "Financial"},
		{SpaceSeparated, "SpaceSeparated"},
		{FixedWidth, "FixedWidth"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"markup", Markup, false},
		{"HTML", Markup, false},
		{"Markdown", Markdown, false},
		{"md", Markdown, false},
		{"ledger", Financial, false},
		{"space-separated", SpaceSeparated, false},
		{" fixedwidth ", FixedWidth, false},
		{"ascii", FixedWidth, false},
		{"", Unknown, false},
		{"auto", Unknown, false},
		{"spreadsheet", Unknown, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFormat_TextRoundTrip(t *testing.T) {
	for _, f := range All {
		text, err := f.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", f, err)
		}
		var got Format
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if got != f {
			t.Errorf("round trip %v = %v", f, got)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"table.html", Markup},
		{"table.HTM", Markup},
		{"table.xhtml", Markup},
		{"table.md", Markdown},
		{"table.Markdown", Markdown},
		{"invoice.txt", Unknown},
		{"invoice", Unknown},
		{"", Unknown},
		{"/path/to/segment.html", Markup},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectMarkup(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{
			name: "table fragment",
			data: []byte("<table><tr><td>a</td></tr></table>"),
			want: true,
		},
		{
			name: "uppercase with leading whitespace",
			data: []byte("  \n  <TABLE BORDER=1><TR><TD>a</TD></TR></TABLE>"),
			want: true,
		},
		{
			name: "bare rows",
			data: []byte("<tr><th>Name</th></tr>"),
			want: true,
		},
		{
			name: "full document with table",
			data: []byte("<!DOCTYPE html><html><body><p>x</p><table></table></body></html>"),
			want: true,
		},
		{
			name: "full document without table",
			data: []byte("<html><body><p>x</p></body></html>"),
			want: false,
		},
		{
			name: "markdown table",
			data: []byte("| a | b |\n|---|---|"),
			want: false,
		},
		{
			name: "empty data",
			data: []byte{},
			want: false,
		},
		{
			name: "only whitespace",
			data: []byte(" \t\r\n"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectMarkup(tt.data); got != tt.want {
				t.Errorf("DetectMarkup() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromContent(t *testing.T) {
	f, markup := DetectFromContent("segment.txt", []byte("<table><tr><td>1</td></tr></table>"))
	if f != Markup || !markup {
		t.Errorf("DetectFromContent(sniffed html) = %v, %v; want Markup, true", f, markup)
	}

	f, markup = DetectFromContent("segment.md", []byte("| a |\n|---|"))
	if f != Markdown || markup {
		t.Errorf("DetectFromContent(.md) = %v, %v; want Markdown, false", f, markup)
	}

	f, markup = DetectFromContent("segment.txt", []byte("Name  Age"))
	if f != Unknown || markup {
		t.Errorf("DetectFromContent(text) = %v, %v; want Unknown, false", f, markup)
	}
}
