package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claryai/tabula"
	"github.com/claryai/tabula/cache"
	"github.com/claryai/tabula/format"
	"github.com/claryai/tabula/model"
)

// batchLine is one NDJSON record of batch output.
type batchLine struct {
	File   string                 `json:"file"`
	Format format.Format          `json:"format"`
	Table  *model.StructuredTable `json:"table"`
}

func newBatchCommand(a *app) *cobra.Command {
	var (
		flags       blockFlags
		concurrency int
		cacheSize   int
	)

	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Extract tables from many files, one JSON line per file",
		Long: `Extract the table held in each file in parallel and write one JSON
object per line, in argument order:

  {"file":"a.txt","format":"Markdown","table":{...}}

Identical blocks are parsed once when the cache is enabled.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := flags.format()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("concurrency") {
				concurrency = a.cfg.Batch.Concurrency
			}
			if !cmd.Flags().Changed("cache-size") {
				cacheSize = a.cfg.Batch.CacheSize
			}

			blocks := make([]model.RawBlock, len(args))
			for i, name := range args {
				_, data, err := readInput(cmd, []string{name})
				if err != nil {
					return err
				}
				blocks[i] = flags.block(name, data)
			}

			opts := []tabula.Option{
				tabula.WithConcurrency(concurrency),
				tabula.WithConfig(a.cfg.Parser),
				tabula.WithFormat(f),
				tabula.WithLogger(a.logger),
			}
			var c *cache.Cache
			if cacheSize > 0 {
				if c, err = cache.New(cacheSize); err != nil {
					return err
				}
				opts = append(opts, tabula.WithCache(c))
			}

			results, err := tabula.ExtractAll(cmd.Context(), blocks, opts...)
			if err != nil {
				return fmt.Errorf("batch cancelled: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			failed := 0
			for i, tbl := range results {
				if !tbl.OK() {
					failed++
				}
				if err := enc.Encode(batchLine{File: args[i], Format: tbl.Format, Table: tbl}); err != nil {
					return fmt.Errorf("failed to encode result for %s: %w", args[i], err)
				}
			}

			attrs := []any{"files", len(args), "without_table", failed}
			if c != nil {
				st := c.Stats()
				attrs = append(attrs, "cache_hits", st.Hits, "cache_misses", st.Misses)
			}
			a.logger.Info("batch complete", attrs...)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", 0, "Blocks parsed at once (default from config)")
	cmd.Flags().IntVar(&cacheSize, "cache-size", 0, "Results kept for identical blocks, 0 disables (default from config)")
	return cmd
}
