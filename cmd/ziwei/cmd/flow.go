package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/f3rmion/ziwei/internal/ziwei"
	"github.com/spf13/cobra"
)

var flowCmd = &cobra.Command{
	Use:   "flow",
	Short: "Show the flow year (流年) overlay of a chart",
	Long: `Overlay a civil year onto a chart: the year pillar, the natal palace
it activates, the nominal age and its decade, and where the year stem's
four transformations land. With --months the twelve lunar month pillars
of the year are listed too.

Example:
  ziwei flow --date 1990-01-01 --hour 14 --gender male --year 2026`,
	RunE: runFlow,
}

func init() {
	addBirthFlags(flowCmd)
	flowCmd.Flags().Int("year", 0, "flow year (default current year)")
	flowCmd.Flags().Bool("months", false, "list the lunar month pillars")
	rootCmd.AddCommand(flowCmd)
}

func runFlow(cmd *cobra.Command, args []string) error {
	c, err := calculate(cmd)
	if err != nil {
		return err
	}
	year, _ := cmd.Flags().GetInt("year")
	if year == 0 {
		year = time.Now().Year()
	}
	months, _ := cmd.Flags().GetBool("months")

	writeFlow(cmd.OutOrStdout(), ziwei.FlowYearOf(c, year), months)
	return nil
}

func writeFlow(w io.Writer, fy ziwei.FlowYear, months bool) {
	fmt.Fprintf(w, "流年 %d %s%s\n", fy.Year, fy.Stem, fy.Branch)
	fmt.Fprintf(w, "宫位   %s %s\n", fy.Palace, fy.Role)
	fmt.Fprintf(w, "虚岁   %d\n", fy.Age)
	if fy.InDecade {
		d := fy.Decade
		fmt.Fprintf(w, "大限   %s %d-%d岁 (%d-%d年)\n", d.Branch, d.StartAge, d.EndAge, d.StartYear, d.EndYear)
	} else {
		fmt.Fprintf(w, "大限   -\n")
	}
	for _, t := range fy.Transforms {
		where := "-"
		if t.Placed {
			where = t.Branch.String()
		}
		fmt.Fprintf(w, "化%s   %s %s\n", t.Letter, t.Star, where)
	}
	if !months {
		return
	}
	fmt.Fprintln(w)
	for m := 1; m <= 12; m++ {
		s, b := ziwei.FlowMonth(fy.Year, m)
		fmt.Fprintf(w, "%2d月   %s%s\n", m, s, b)
	}
}
