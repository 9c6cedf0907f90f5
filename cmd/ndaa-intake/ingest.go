package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasc-tools/ndaa-intake/internal/ingest"
)

func newIngestCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Batch-process a directory of request documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newAppContext(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if dir == "" {
				dir = a.cfg.Ingest.RequestsDir
			}
			if dir == "" {
				return fmt.Errorf("--dir is required (or set REQUESTS_DIR)")
			}

			docs, fileErrs, stats, err := ingest.CollectDirectory(dir, a.cfg.Ingest.SkipHidden, a.logger)
			if err != nil {
				return err
			}
			for _, fe := range fileErrs {
				a.logger.Warn("ingest.file.failed", "path", fe.Path, "error", fe.Err)
			}

			existing, err := a.repo.ListRequests(ctx)
			if err != nil {
				return err
			}

			batch, err := a.processor.ProcessBatch(ctx, docs, existing)
			if err != nil {
				return err
			}
			for _, be := range batch.Errors {
				a.logger.Warn("ingest.document.failed", "filename", be.Filename, "reason", be.Reason)
			}

			applied := 0
			for _, ins := range batch.Upserts {
				if _, err := a.repo.ApplyUpsert(ctx, ins); err != nil {
					a.logger.Error("ingest.upsert.failed", "id", ins.ID, "error", err)
					continue
				}
				applied++
			}

			fmt.Printf("scanned %d files, loaded %d, applied %d upserts, %d document errors\n",
				stats.Scanned, stats.Loaded, applied, len(batch.Errors))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory of request documents")
	return cmd
}
