package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasc-tools/ndaa-intake/internal/ingest"
	"github.com/hasc-tools/ndaa-intake/internal/reconcile"
)

func newReconcileCmd() *cobra.Command {
	var dir string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Audit the submissions folder against the record set",
		Long: `reconcile groups near-duplicate files in the submissions folder,
attaches orphaned documents to the records they belong to, and inserts
placeholder records for submissions with no record at all.`,
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

			paths, err := ingest.ListFiles(dir, a.cfg.Ingest.SkipHidden)
			if err != nil {
				return err
			}

			existing, err := a.repo.ListRequests(ctx)
			if err != nil {
				return err
			}

			auditor := reconcile.NewAuditor(a.fields, a.merger, a.cfg.Heuristics, a.logger)
			result, err := auditor.Audit(paths, existing)
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Printf("dry run: %d groups, %d attachments, %d recovered records\n",
					result.Groups, len(result.Attachments), len(result.Inserts))
				return nil
			}

			for _, att := range result.Attachments {
				if err := a.repo.SetDocumentPath(ctx, att.ID, att.Path); err != nil {
					a.logger.Error("reconcile.attach.failed", "id", att.ID, "error", err)
				}
			}
			recovered := 0
			for _, ins := range result.Inserts {
				if _, err := a.repo.ApplyUpsert(ctx, ins); err != nil {
					a.logger.Error("reconcile.insert.failed", "id", ins.ID, "error", err)
					continue
				}
				recovered++
			}

			fmt.Printf("%d files in %d groups: %d attached, %d recovered\n",
				len(paths), result.Groups, len(result.Attachments), recovered)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "submissions directory to audit")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report without writing")
	return cmd
}
