package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/f3rmion/ziwei/internal/ziwei"
)

// BirthForm holds the raw values collected by the interactive form.
type BirthForm struct {
	Date   string // YYYY-MM-DD
	Hour   string
	Gender string
	Lunar  bool
	Leap   bool
}

// ParseDate splits a YYYY-MM-DD string. Lunar dates may use day 30 in any
// month, so the value is not checked against the solar calendar here.
func ParseDate(s string) (year, month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("date %q: want YYYY-MM-DD", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("date %q: %w", s, err)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

func validateDate(s string) error {
	_, _, _, err := ParseDate(s)
	return err
}

func validateHour(s string) error {
	h, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("hour must be a number")
	}
	if h < 0 || h > 23 {
		return errors.New("hour must be between 0 and 23")
	}
	return nil
}

// Input converts the form values and validates them.
func (f *BirthForm) Input() (ziwei.BirthInput, error) {
	y, mo, d, err := ParseDate(f.Date)
	if err != nil {
		return ziwei.BirthInput{}, err
	}
	h, err := strconv.Atoi(strings.TrimSpace(f.Hour))
	if err != nil {
		return ziwei.BirthInput{}, fmt.Errorf("hour %q: %w", f.Hour, err)
	}
	in := ziwei.BirthInput{
		Year:        y,
		Month:       mo,
		Day:         d,
		Hour:        h,
		Gender:      ziwei.Gender(f.Gender),
		IsLunar:     f.Lunar,
		IsLeapMonth: f.Lunar && f.Leap,
	}
	if err := ziwei.Validate(in); err != nil {
		return ziwei.BirthInput{}, err
	}
	return in, nil
}

// NewBirthForm returns a huh form bound to f. Fields already set in f are
// used as defaults.
func NewBirthForm(f *BirthForm) *huh.Form {
	if f.Gender == "" {
		f.Gender = string(ziwei.Male)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Birth date (YYYY-MM-DD)").
				Placeholder(time.Now().Format("2006-01-02")).
				Value(&f.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Hour (0-23)").
				Placeholder("12").
				Value(&f.Hour).
				Validate(validateHour),
			huh.NewSelect[string]().
				Title("Gender").
				Options(
					huh.NewOption("男 male", string(ziwei.Male)),
					huh.NewOption("女 female", string(ziwei.Female)),
				).
				Value(&f.Gender),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Is the date on the lunar calendar?").
				Value(&f.Lunar),
			huh.NewConfirm().
				Title("Leap month?").
				Value(&f.Leap),
		),
	).WithShowHelp(false)
}
