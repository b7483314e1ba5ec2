// Package types implements special types for the Umuryango Budget backend.
package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ID returns the month identity as used in storage keys and export
// documents. The month number is not zero padded, March 2025 is "2025-3".
func (m Month) ID() string {
	return fmt.Sprintf("%d-%d", time.Time(m).Year(), int(time.Time(m).Month()))
}

// ParseMonthID parses a month identity in the "{year}-{month}" format.
func ParseMonthID(s string) (Month, error) {
	year, number, ok := strings.Cut(s, "-")
	if !ok {
		return Month{}, fmt.Errorf("%q is not a valid month id", s)
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return Month{}, fmt.Errorf("%q is not a valid month id", s)
	}

	n, err := strconv.Atoi(number)
	if err != nil || n < 1 || n > 12 {
		return Month{}, fmt.Errorf("%q is not a valid month id", s)
	}

	return NewMonth(y, time.Month(n)), nil
}

// Year returns the calendar year of the month.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// Number returns the zero-based month number (January is 0). This matches
// the numbering in persisted records and export documents.
func (m Month) Number() int {
	return int(time.Time(m).Month()) - 1
}

var frenchMonths = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// DisplayName returns the French month name, the locale the app uses.
func (m Month) DisplayName() string {
	return frenchMonths[m.Number()]
}

// String returns the display name with the year, e.g. "mars 2025".
func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.DisplayName(), m.Year())
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the date is in the month.
func (m Month) Contains(d Date) bool {
	return d.Year() == m.Year() && d.Month().Equal(m)
}

// Dates enumerates every calendar date of the month in order.
func (m Month) Dates() []Date {
	first := time.Time(m)
	days := first.AddDate(0, 1, -1).Day()

	dates := make([]Date, 0, days)
	for day := 1; day <= days; day++ {
		dates = append(dates, NewDate(m.Year(), first.Month(), day))
	}

	return dates
}
