package main

import (
	"errors"
	"fmt"

	"hugoland/internal/app/persist"
	"hugoland/internal/app/ports"

	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Upgrade the saved document to the current schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be, err := opts.open(ctx, cmd)
			if err != nil {
				return err
			}
			defer be.Close()

			stored, err := be.KV.GetItem(ctx, opts.cfg.StorageKey)
			if errors.Is(err, ports.ErrNotFound) {
				return fmt.Errorf("no document under %q", opts.cfg.StorageKey)
			}
			if err != nil {
				return err
			}
			migrated, applied, err := persist.Migrate([]byte(stored))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(applied) == 0 {
				fmt.Fprintf(out, "document is at schema v%d, nothing to do\n", persist.SchemaVersion(migrated))
				return nil
			}
			for _, name := range applied {
				fmt.Fprintf(out, "applied %s\n", name)
			}
			if dryRun {
				fmt.Fprintln(out, "dry run, document not written")
				return nil
			}
			return be.KV.SetItem(ctx, opts.cfg.StorageKey, string(migrated))
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report migrations without writing")
	return cmd
}
