package main

import (
	"context"
	"io"
	"log"
	"time"

	"hugoland/internal/backend"
	"hugoland/internal/config"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfg     config.Config
	storage string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Config{
			Storage:          config.StorageSQLite,
			SQLitePath:       "hugoland.db",
			StorageKey:       "hugoland-game-state",
			AutosaveInterval: 30 * time.Second,
		}
	}
	opts.cfg = cfg

	root := &cobra.Command{
		Use:          "hugoctl",
		Short:        "Inspect and maintain a Hugoland save",
		Long:         "hugoctl reads and rewrites the saved player document and its event journal\nin the storage the server is configured with.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.cfg.Storage = config.StorageKind(opts.storage)
			return opts.cfg.Validate()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.storage, "storage", string(cfg.Storage), "storage backend: memory, sqlite or postgres")
	flags.StringVar(&opts.cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "save file for sqlite storage")
	flags.StringVar(&opts.cfg.DatabaseDSN, "dsn", cfg.DatabaseDSN, "postgres dsn")
	flags.StringVar(&opts.cfg.StorageKey, "key", cfg.StorageKey, "storage key of the document")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log storage activity to stderr")

	root.AddCommand(
		newInspectCmd(opts),
		newMigrateCmd(opts),
		newResetCmd(opts),
		newEventsCmd(opts),
	)
	return root
}

func (o *rootOptions) logger(cmd *cobra.Command) *log.Logger {
	if !o.verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), "hugoctl: ", 0)
}

func (o *rootOptions) open(ctx context.Context, cmd *cobra.Command) (backend.Backend, error) {
	return backend.Open(ctx, o.cfg, o.logger(cmd))
}
