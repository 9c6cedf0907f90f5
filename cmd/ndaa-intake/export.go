package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hasc-tools/ndaa-intake/internal/export"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the authorized-requests XLSX report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newAppContext(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			svc := export.NewService(a.repo, a.logger)
			data, err := svc.ExportAuthorizedXLSX(ctx)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}

			fmt.Printf("wrote %s (%d bytes)\n", out, len(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "authorized_requests.xlsx", "output XLSX path")
	return cmd
}
