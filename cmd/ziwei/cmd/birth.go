package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/f3rmion/ziwei/internal/tui"
	"github.com/f3rmion/ziwei/internal/ziwei"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var errNoBirth = errors.New("--date and --hour are required when stdin is not a terminal")

// addBirthFlags registers the birth input flags shared by chart, browse and flow.
func addBirthFlags(c *cobra.Command) {
	c.Flags().String("date", "", "birth date as YYYY-MM-DD")
	c.Flags().String("hour", "", "birth hour 0-23")
	c.Flags().String("gender", string(ziwei.Male), "male or female")
	c.Flags().Bool("lunar", false, "date is on the lunar calendar")
	c.Flags().Bool("leap", false, "lunar month is a leap month")
}

// birthFromFlags reads the birth flags. When date or hour is missing on an
// interactive terminal the birth form fills the gaps.
func birthFromFlags(c *cobra.Command) (ziwei.BirthInput, error) {
	form := &tui.BirthForm{}
	form.Date, _ = c.Flags().GetString("date")
	form.Hour, _ = c.Flags().GetString("hour")
	form.Gender, _ = c.Flags().GetString("gender")
	form.Lunar, _ = c.Flags().GetBool("lunar")
	form.Leap, _ = c.Flags().GetBool("leap")

	if form.Date == "" || form.Hour == "" {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return ziwei.BirthInput{}, errNoBirth
		}
		if err := tui.NewBirthForm(form).Run(); err != nil {
			return ziwei.BirthInput{}, fmt.Errorf("birth form: %w", err)
		}
	}
	return form.Input()
}

// calculate resolves the birth flags and builds the chart.
func calculate(c *cobra.Command) (*ziwei.Chart, error) {
	in, err := birthFromFlags(c)
	if err != nil {
		return nil, err
	}
	calc, closeCache, err := newCalculator()
	if err != nil {
		return nil, err
	}
	defer closeCache()
	return calc.Calculate(in)
}
