package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/ziwei/internal/clipboard"
	"github.com/f3rmion/ziwei/internal/tui"
	"github.com/f3rmion/ziwei/internal/tui/bigchar"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Explore a chart interactively",
	Long: `Open the chart in a terminal browser.

Move between palaces with the arrow keys or h/l, jump to the opposite
palace with o and back to the life palace with m. Press f to overlay a
flow year and y to copy the hook JSON to the clipboard.

Missing birth flags are asked for with a form.`,
	RunE: runBrowse,
}

func init() {
	addBirthFlags(browseCmd)
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	c, err := calculate(cmd)
	if err != nil {
		return err
	}

	opts := []tui.BrowserOption{
		tui.WithColor(true),
		tui.WithGlyphs(bigchar.System()),
	}
	if r := romanizer(); r != nil {
		opts = append(opts, tui.WithRomanizer(r))
	}
	if clipboard.Available() {
		opts = append(opts, tui.WithCopier(clipboard.Write))
	}

	p := tea.NewProgram(tui.NewBrowser(c, opts...), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
