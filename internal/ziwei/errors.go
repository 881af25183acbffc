package ziwei

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every *InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrLunarConversion matches every *LunarConversionError.
	ErrLunarConversion = errors.New("lunar conversion failed")
)

// InvalidInputError reports a malformed birth input.
type InvalidInputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// LunarConversionError reports a date the calendar library rejects.
type LunarConversionError struct {
	Year, Month, Day int
	Leap             bool
	Err              error
}

func (e *LunarConversionError) Error() string {
	leap := ""
	if e.Leap {
		leap = " (leap)"
	}
	return fmt.Sprintf("converting %04d-%02d-%02d%s: %v", e.Year, e.Month, e.Day, leap, e.Err)
}

func (e *LunarConversionError) Unwrap() error { return e.Err }

func (e *LunarConversionError) Is(target error) bool { return target == ErrLunarConversion }

// Stage names a step of the chart pipeline.
type Stage string

const (
	StageValidate Stage = "validate"
	StageResolve  Stage = "resolve"
)

// StageError identifies the pipeline stage a calculation failed in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s: %v", e.Stage, e.Err) }

func (e *StageError) Unwrap() error { return e.Err }

// Validate checks the input bounds before any computation.
func Validate(in BirthInput) error {
	if in.Year < 1900 || in.Year > 2100 {
		return &InvalidInputError{Field: "year", Value: in.Year, Reason: "must be between 1900 and 2100"}
	}
	if in.Month < 1 || in.Month > 12 {
		return &InvalidInputError{Field: "month", Value: in.Month, Reason: "must be between 1 and 12"}
	}
	maxDay := 31
	if in.IsLunar {
		maxDay = 30
	}
	if in.Day < 1 || in.Day > maxDay {
		return &InvalidInputError{Field: "day", Value: in.Day, Reason: fmt.Sprintf("must be between 1 and %d", maxDay)}
	}
	if !in.IsLunar && in.Day > daysIn(in.Year, in.Month) {
		return &InvalidInputError{Field: "day", Value: in.Day, Reason: fmt.Sprintf("%04d-%02d has %d days", in.Year, in.Month, daysIn(in.Year, in.Month))}
	}
	if in.Hour < 0 || in.Hour > 23 {
		return &InvalidInputError{Field: "hour", Value: in.Hour, Reason: "must be between 0 and 23"}
	}
	if in.Gender != Male && in.Gender != Female {
		return &InvalidInputError{Field: "gender", Value: in.Gender, Reason: `must be "male" or "female"`}
	}
	if in.IsLeapMonth && !in.IsLunar {
		return &InvalidInputError{Field: "isLeapMonth", Value: true, Reason: "only valid for lunar input"}
	}
	return nil
}

func daysIn(year, month int) int {
	switch month {
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}
