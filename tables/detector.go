package tables

import (
	"fmt"
	"sort"

	"github.com/claryai/tabula/format"
	"github.com/claryai/tabula/model"
)

// Parser is the interface for table parsing algorithms. Implementations are
// stateless; one value may serve any number of goroutines.
type Parser interface {
	// Format returns the layout family the parser handles
	Format() format.Format

	// Parse converts a block into a normalized table. It never panics on
	// malformed input and never returns a nil table.
	Parse(block model.RawBlock, cfg Config) *model.StructuredTable
}

// Registry maps formats to parsers.
type Registry struct {
	parsers map[format.Format]Parser
}

// NewRegistry creates a new parser registry holding the built-in parsers.
func NewRegistry() *Registry {
	r := &Registry{
		parsers: make(map[format.Format]Parser),
	}
	r.Register(markupParser{})
	r.Register(markdownParser{})
	r.Register(financialParser{})
	r.Register(spaceSeparatedParser{})
	r.Register(fixedWidthParser{})
	return r
}

// Register registers a parser, replacing any parser for the same format.
// Registration is not synchronized; finish it before sharing the registry.
func (r *Registry) Register(p Parser) {
	r.parsers[p.Format()] = p
}

// Get retrieves a parser by format
func (r *Registry) Get(f format.Format) Parser {
	return r.parsers[f]
}

// List returns all registered formats in classification order.
func (r *Registry) List() []format.Format {
	formats := make([]format.Format, 0, len(r.parsers))
	for f := range r.parsers {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// Parse classifies the block and runs the matching parser.
func (r *Registry) Parse(block model.RawBlock, cfg Config) *model.StructuredTable {
	cfg = cfg.WithDefaults()
	return r.ParseAs(block, Classify(block, cfg), cfg)
}

// ParseAs runs the parser for f, bypassing classification. A panic inside a
// parser is reported as a failed table rather than propagated.
func (r *Registry) ParseAs(block model.RawBlock, f format.Format, cfg Config) (t *model.StructuredTable) {
	cfg = cfg.WithDefaults()
	p := r.Get(f)
	if p == nil {
		return model.Failed(f, fmt.Sprintf("No parser registered for %s tables", f))
	}

	defer func() {
		if rec := recover(); rec != nil {
			t = model.Failed(f, fmt.Sprintf("Failed to parse %s table: %v", f, rec))
		}
	}()

	t = p.Parse(block, cfg)
	if t == nil {
		return model.Failed(f, model.NoDataError)
	}
	if t.Format == format.Unknown {
		t.Format = f
	}
	return t
}

// Built-in parsers, shared read-only.
var defaultRegistry = NewRegistry()

// Parse classifies a block with the default configuration and parses it.
func Parse(block model.RawBlock) *model.StructuredTable {
	return defaultRegistry.Parse(block, DefaultConfig())
}

// ParseWithConfig classifies and parses a block using cfg.
func ParseWithConfig(block model.RawBlock, cfg Config) *model.StructuredTable {
	return defaultRegistry.Parse(block, cfg)
}

// ParseAs parses a block with the parser for f.
func ParseAs(block model.RawBlock, f format.Format, cfg Config) *model.StructuredTable {
	return defaultRegistry.ParseAs(block, f, cfg)
}
