package cmd

import (
	"fmt"
	"io"

	"github.com/f3rmion/ziwei/internal/config"
	"github.com/f3rmion/ziwei/internal/hook"
	"github.com/f3rmion/ziwei/internal/ziwei"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var batchWorkers int

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Calculate many charts from a YAML or TOML file",
	Long: `Calculate every input listed in FILE concurrently.

The file holds an "inputs" list. Each entry has year, month, day, hour and
gender, plus optional isLunar and isLeapMonth. A failing entry is reported
and never stops the others.

Example file (charts.yaml):
  inputs:
    - {year: 1990, month: 1, day: 1, hour: 14, gender: male}
    - {year: 1984, month: 2, day: 2, hour: 23, gender: female}

With --format hook each result is printed as a JSON array entry; any other
format prints one summary line per input.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "concurrent calculations (default from config, then GOMAXPROCS)")
	rootCmd.AddCommand(batchCmd)
}

type batchEntry struct {
	Index int              `json:"index"`
	Input ziwei.BirthInput `json:"input"`
	Chart *hook.Chart      `json:"chart,omitempty"`
	Error string           `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputs, err := config.LoadBatch(args[0])
	if err != nil {
		return err
	}
	calc, closeCache, err := newCalculator()
	if err != nil {
		return err
	}
	defer closeCache()

	workers := batchWorkers
	if workers == 0 {
		workers = cfg.Workers
	}
	batch := calc.Batch(cmd.Context(), inputs, workers)
	logger.Info("batch finished",
		zap.String("batch", batch.ID),
		zap.Int("succeeded", batch.Succeeded()),
		zap.Int("failed", len(batch.Failed())))

	out := cmd.OutOrStdout()
	if cfg.DefaultFormat == config.FormatHook {
		if err := writeJSON(out, batchEntries(batch)); err != nil {
			return err
		}
	} else {
		writeBatchSummary(out, batch)
	}

	if failed := batch.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d inputs failed", len(failed), len(batch.Results))
	}
	return nil
}

func batchEntries(b *ziwei.Batch) []batchEntry {
	entries := make([]batchEntry, len(b.Results))
	for i, r := range b.Results {
		entries[i] = batchEntry{Index: r.Index, Input: r.Input}
		if r.Err != nil {
			entries[i].Error = r.Err.Error()
			continue
		}
		h := hook.Convert(r.Chart)
		entries[i].Chart = &h
	}
	return entries
}

func writeBatchSummary(w io.Writer, b *ziwei.Batch) {
	for _, r := range b.Results {
		in := r.Input
		fmt.Fprintf(w, "#%d %04d-%02d-%02d %02dh %s  ", r.Index+1, in.Year, in.Month, in.Day, in.Hour, in.Gender.Chinese())
		if r.Err != nil {
			fmt.Fprintf(w, "error: %v\n", r.Err)
			continue
		}
		c := r.Chart
		fmt.Fprintf(w, "%s  命宫%s 身宫%s  %s  命主%s 身主%s\n",
			c.Sexagenary.Bazi(), c.Life, c.Body, c.Bureau, c.LifeMaster, c.BodyMaster)
	}
	fmt.Fprintf(w, "\n%d succeeded, %d failed (batch %s)\n", b.Succeeded(), len(b.Failed()), b.ID)
}
