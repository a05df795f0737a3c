package entities

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date format used wherever a Date is rendered as text.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a string is not a YYYY-MM-DD calendar date.
var ErrInvalidDate = errors.New("invalid calendar date")

// Date is a calendar date without a time component.
// The zero value is the null (unset) date.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate builds a Date from its parts as given, with no normalization.
func NewDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

// ParseDate parses a YYYY-MM-DD string. An empty string yields the null date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w %q: %v", ErrInvalidDate, s, err)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

func (d Date) Year() int { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int { return d.day }

// IsNull reports whether d is the unset date.
func (d Date) IsNull() bool {
	return d == Date{}
}

// String renders d as YYYY-MM-DD, or "" for the null date.
func (d Date) String() string {
	if d.IsNull() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}
