package cmd

import (
	"fmt"

	"github.com/f3rmion/ziwei/internal/cache"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the chart cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache location and entry count",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cache.Open(cfg.CachePath, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		st, err := store.Stats()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "backend: %s\n", st.Backend)
		fmt.Fprintf(out, "path:    %s\n", st.Path)
		fmt.Fprintf(out, "entries: %d\n", st.Entries)
		if !cfg.CacheEnabled {
			fmt.Fprintln(out, "(cache is disabled in config)")
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cache.Open(cfg.CachePath, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Clear()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached charts from %s\n", n, cfg.CachePath)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
