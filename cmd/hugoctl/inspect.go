package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hugoland/internal/app/persist"
	"hugoland/internal/app/ports"
	"hugoland/internal/domain/catalog"
	"hugoland/internal/domain/player"

	"github.com/spf13/cobra"
)

func newInspectCmd(opts *rootOptions) *cobra.Command {
	var (
		raw     bool
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the saved document",
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
			if raw {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), stored)
				return err
			}

			s, applied, err := persist.Decode([]byte(stored), time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if summary {
				stats := player.Engine{Catalog: catalog.Default()}.Stats(s)
				fmt.Fprintf(out, "schema:   v%d (stored v%d)\n", s.SchemaVersion, persist.SchemaVersion([]byte(stored)))
				fmt.Fprintf(out, "zone:     %d (premium: %v)\n", s.Zone, s.Premium)
				fmt.Fprintf(out, "level:    %d (prestige %d)\n", s.Progression.Level, s.Progression.PrestigeLevel)
				fmt.Fprintf(out, "coins:    %d  gems: %d  shiny: %d\n", s.Currencies.Coins, s.Currencies.Gems, s.Currencies.ShinyGems)
				fmt.Fprintf(out, "stats:    hp %d/%d  atk %d  def %d\n", stats.HP, stats.MaxHP, stats.Atk, stats.Def)
				fmt.Fprintf(out, "items:    %d weapons, %d armor, %d relics\n", len(s.Inventory.Weapons), len(s.Inventory.Armor), len(s.Inventory.Relics))
				fmt.Fprintf(out, "research: level %d\n", s.Research.Level)
				if len(applied) > 0 {
					fmt.Fprintf(out, "pending migrations: %v\n", applied)
				}
				return nil
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the stored text without decoding")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a short human readable summary")
	return cmd
}
