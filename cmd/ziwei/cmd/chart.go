package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/f3rmion/ziwei/internal/config"
	"github.com/f3rmion/ziwei/internal/hook"
	"github.com/f3rmion/ziwei/internal/tui"
	"github.com/f3rmion/ziwei/internal/ziwei"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Calculate a birth chart",
	Long: `Calculate a ZiWei Dou Shu chart and print it.

Formats:
  hook    palace-keyed JSON (子..亥 plus birth info and summary keys)
  yaml    the same document as YAML
  grid    a 4x4 text chart with the summary in the centre
  render  JSON view model with grid cells, strength and transform lines

Example:
  ziwei chart --date 1990-01-01 --hour 14 --gender male --format grid
  ziwei chart --date 1989-12-05 --hour 14 --lunar --format hook`,
	RunE: runChart,
}

func init() {
	addBirthFlags(chartCmd)
	chartCmd.Flags().Bool("no-color", false, "disable colors in grid output")
	chartCmd.Flags().Int("width", 0, "grid cell width")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	c, err := calculate(cmd)
	if err != nil {
		return err
	}
	noColor, _ := cmd.Flags().GetBool("no-color")
	width, _ := cmd.Flags().GetInt("width")
	out := cmd.OutOrStdout()
	return writeChart(out, c, cfg.DefaultFormat, tui.GridOptions{
		CellWidth: width,
		Color:     !noColor && colorOutput(out),
	})
}

func writeChart(w io.Writer, c *ziwei.Chart, format string, grid tui.GridOptions) error {
	var opts []hook.RenderOption
	if r := romanizer(); r != nil {
		opts = append(opts, hook.WithRomanizer(r))
	}

	switch format {
	case config.FormatHook:
		return writeJSON(w, hook.Convert(c))
	case config.FormatYAML:
		data, err := yaml.Marshal(hook.Convert(c))
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case config.FormatRender:
		return writeJSON(w, hook.Render(c, opts...))
	case config.FormatGrid:
		_, err := fmt.Fprintln(w, tui.RenderGrid(hook.Render(c, opts...), grid))
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
