package tabula

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/claryai/tabula/model"
)

// ExtractAll parses blocks in parallel. The result has one table per block,
// in input order. Parsing itself cannot fail; the only error is ctx's, in
// which case blocks not yet started are skipped and no tables are returned.
func ExtractAll(ctx context.Context, blocks []model.RawBlock, opts ...Option) ([]*model.StructuredTable, error) {
	if len(blocks) == 0 {
		return []*model.StructuredTable{}, nil
	}

	o := newBatchOptions(opts)
	results := make([]*model.StructuredTable, len(blocks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, block := range blocks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t := extract(block, o.ExtractOptions)
			logResult(gctx, o.logger, i, t)
			// Each goroutine owns a distinct index.
			results[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func logResult(ctx context.Context, logger *slog.Logger, i int, t *model.StructuredTable) {
	switch {
	case !t.OK():
		logger.DebugContext(ctx, "block is not a table",
			"block", i, "format", t.Format.String(), "error", t.Error)
	case t.Degraded():
		logger.WarnContext(ctx, "table extracted with warnings",
			"block", i, "format", t.Format.String(), "warnings", t.Warnings)
	default:
		logger.DebugContext(ctx, "table extracted",
			"block", i, "format", t.Format.String(), "rows", t.NumRows(), "cols", t.NumCols())
	}
}
