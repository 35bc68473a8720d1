package cli

import (
	"fmt"
	"log/slog"

	"github.com/spacesedan/sentireview/internal/cache"
	"github.com/spf13/cobra"
)

func newCacheCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the polarity score cache",
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop every cached polarity score",
		Long: `Drop every cached polarity score from the configured cache backend.

Only sentireview keys are removed from Valkey; other keys in the same
database are left alone. The memory cache lives for a single process, so
clearing it only matters to long-running embeddings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, closeCache, err := cache.Open(a.cfg.Cache)
			if err != nil {
				return err
			}
			defer func() { _ = closeCache() }()

			if c == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Cache disabled, nothing to clear")
				return nil
			}
			if err := c.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("failed to clear %s cache: %w", a.cfg.Cache.Backend, err)
			}
			slog.Info("[CLI] Cache cleared", slog.String("backend", a.cfg.Cache.Backend))
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s cache\n", a.cfg.Cache.Backend)
			return nil
		},
	}

	cmd.AddCommand(clearCmd)
	return cmd
}
