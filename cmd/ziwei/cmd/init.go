package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/ziwei/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write the default configuration to $HOME/.config/ziwei/config.yaml,
or to the path given with --config.

Settings:
  cache_path      sqlite file for computed charts
  cache_enabled   reuse charts across runs
  log_level       debug, info, warn or error
  workers         batch concurrency, 0 for GOMAXPROCS
  romanize        pinyin for star names: tone, plain or off
  default_format  hook, yaml, grid or render

Every setting can be overridden with a ZIWEI_ environment variable,
e.g. ZIWEI_CACHE_ENABLED=false.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path, err := configPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit the file to change the cache location or output format")
	fmt.Fprintln(out, "  2. Run 'ziwei chart --date 1990-01-01 --hour 14' to calculate a chart")
	return nil
}
