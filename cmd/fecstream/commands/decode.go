package commands

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"fecstream/internal/export"
	"fecstream/internal/fec"
	"fecstream/internal/logging"
)

// decode <filing>: stream the filing into one CSV file per record type.
func decodeCmd() *cobra.Command {
	var (
		outDir    string
		strict    bool
		batchSize int
	)

	cmd := &cobra.Command{
		Use:   "decode <filing>",
		Short: "Decode a filing into one CSV file per record type",
		Long: `Decode streams a filing line by line, grouping decoded records into
batches and writing each record type to its own CSV file in the output
directory. Pass "-" to read the filing from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("out") {
				outDir = cfg.Export.OutDir
			}
			if !cmd.Flags().Changed("strict") {
				strict = cfg.Parse.Strict
			}
			if !cmd.Flags().Changed("batch-size") {
				batchSize = cfg.Parse.MaxBatchSize
			}

			f, err := fec.Open(args[0], fec.Options{
				MaxBatchSize: batchSize,
				Strict:       strict,
				MaxLineBytes: cfg.Parse.MaxLineBytes,
			})
			if err != nil {
				return err
			}
			defer f.Close()

			ctx := logging.WithFiling(context.Background(), f.ID())
			logger := logging.FromContext(ctx)

			cover, err := f.Cover()
			if err != nil {
				return err
			}
			logger.Info("decoding filing",
				"locator", args[0],
				"form", cover.FormType,
				"filer", cover.FilerCommitteeID,
			)

			w, err := export.NewMultiFileWriter(outDir)
			if err != nil {
				return err
			}
			defer w.Close()

			it, err := f.Batches()
			if err != nil {
				return err
			}

			var rows, batches int
			for {
				b, err := it.Next()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return err
				}
				if err := w.WriteBatch(b); err != nil {
					return err
				}
				rows += len(b.Rows)
				batches++
			}

			if err := w.Close(); err != nil {
				return err
			}

			for _, d := range f.Diagnostics() {
				logger.Warn("skipped line", "line", d.LineNumber, "error", d.Err)
			}
			logger.Info("filing decoded",
				"rows", rows,
				"batches", batches,
				"skipped", len(f.Diagnostics()),
				"out", outDir,
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "out", "output directory for CSV files")
	cmd.Flags().BoolVar(&strict, "strict", false, "abort on the first undecodable line")
	cmd.Flags().IntVar(&batchSize, "batch-size", fec.DefaultMaxBatchSize, "maximum rows per batch")
	return cmd
}
