// Package cmd contains all CLI commands for the ziwei tool.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/f3rmion/ziwei/internal/cache"
	"github.com/f3rmion/ziwei/internal/config"
	"github.com/f3rmion/ziwei/internal/pinyin"
	"github.com/f3rmion/ziwei/internal/ziwei"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ziwei",
	Short: "ZiWei Dou Shu chart calculator",
	Long: `ziwei computes ZiWei Dou Shu (紫微斗数) birth charts.

A chart places the 14 main stars and their companions on the 12 palaces,
annotates them with the four transformations (禄权科忌) of the birth year
and of every palace stem, and lays out the decade, fleeting-year and
minor-limit timelines.

Example:
  ziwei chart --date 1990-01-01 --hour 14 --gender male
  ziwei browse --date 1990-01-01 --hour 14 --gender male`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to subcommands.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ziwei/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "debug logging")
	rootCmd.PersistentFlags().String("format", "", "output format: hook, yaml, grid, render")
	rootCmd.PersistentFlags().Bool("no-cache", false, "skip the chart cache")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("default_format", rootCmd.PersistentFlags().Lookup("format"))
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}

// setup resolves configuration (flags over ZIWEI_* env over file over
// defaults) and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return fmt.Errorf("locating config: %w", err)
	}
	file, err := config.Load(path)
	if err != nil {
		return err
	}

	viper.SetEnvPrefix("ZIWEI")
	viper.AutomaticEnv()
	viper.SetDefault("cache_path", file.CachePath)
	viper.SetDefault("cache_enabled", file.CacheEnabled)
	viper.SetDefault("log_level", file.LogLevel)
	viper.SetDefault("workers", file.Workers)
	viper.SetDefault("romanize", file.Romanize)
	viper.SetDefault("default_format", file.DefaultFormat)

	resolved := &config.Config{
		CachePath:     viper.GetString("cache_path"),
		CacheEnabled:  viper.GetBool("cache_enabled"),
		LogLevel:      viper.GetString("log_level"),
		Workers:       viper.GetInt("workers"),
		Romanize:      viper.GetString("romanize"),
		DefaultFormat: viper.GetString("default_format"),
	}
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		resolved.CacheEnabled = false
	}
	if err := resolved.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = resolved

	zc := zap.NewProductionConfig()
	level, _ := zapcore.ParseLevel(cfg.LogLevel)
	if viper.GetBool("verbose") {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("configuration resolved", zap.String("config", path), zap.Any("settings", cfg))
	return nil
}

// newCalculator builds a calculator with the configured cache. The returned
// closer releases the cache.
func newCalculator() (*ziwei.Calculator, func(), error) {
	opts := []ziwei.Option{ziwei.WithLogger(logger)}
	closer := func() {}
	if cfg.CacheEnabled {
		store, err := cache.Open(cfg.CachePath, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("opening chart cache: %w", err)
		}
		opts = append(opts, ziwei.WithCache(store))
		closer = func() { store.Close() }
	}
	return ziwei.New(opts...), closer, nil
}

func romanizer() *pinyin.Romanizer {
	style, _ := pinyin.ParseStyle(cfg.Romanize)
	if style == pinyin.StyleOff {
		return nil
	}
	return pinyin.New(style)
}

// colorOutput reports whether w is a terminal.
func colorOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
