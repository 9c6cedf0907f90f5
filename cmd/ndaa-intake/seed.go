package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import a JSON seed file into the request store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newAppContext(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if file == "" {
				return fmt.Errorf("--file is required")
			}

			im, err := a.newImporter()
			if err != nil {
				return err
			}
			result, err := im.ImportSeed(ctx, file)
			if err != nil {
				return err
			}
			for _, ie := range result.Errors {
				a.logger.Warn("seed.record.rejected", "index", ie.Index, "reason", ie.Reason)
			}

			fmt.Printf("inserted %d records, rejected %d\n", result.Inserted, len(result.Errors))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON seed file")
	return cmd
}
