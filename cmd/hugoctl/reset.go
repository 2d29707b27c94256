package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hugoland/internal/app/persist"
	"hugoland/internal/domain/player"

	"github.com/spf13/cobra"
)

var errNotConfirmed = errors.New("refusing to reset without --yes")

func newResetCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the saved document with a fresh one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNotConfirmed
			}
			ctx := cmd.Context()
			be, err := opts.open(ctx, cmd)
			if err != nil {
				return err
			}
			defer be.Close()

			now := time.Now()
			codec := persist.Codec{Store: be.KV, Key: opts.cfg.StorageKey, Logger: opts.logger(cmd), Now: func() time.Time { return now }}
			err = be.Tx.RunInTx(ctx, func(ctx context.Context) error {
				if _, err := codec.Save(ctx, player.NewState(now)); err != nil {
					return err
				}
				return be.Events.Append(ctx, opts.cfg.StorageKey, []player.DomainEvent{{
					Type:       player.EventReset,
					OccurredAt: now,
					Payload:    map[string]any{"source": "hugoctl"},
				}})
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reset %q\n", opts.cfg.StorageKey)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
