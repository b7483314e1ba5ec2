package types

import (
	"strings"
	"time"
)

// Date is a calendar date without a time of day. All comparisons work on
// whole days, which is what editability checks need.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a string in RFC3339 full-date format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format("2006-01-02")
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. Everything after
// a full date is ignored so that timestamps parse as their calendar date.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	if len(value) > 10 {
		value = value[:10]
	}

	date, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = date
	return nil
}

// Year returns the calendar year of the date.
func (d Date) Year() int {
	return time.Time(d).Year()
}

// Month returns the Month the date is in.
func (d Date) Month() Month {
	return MonthOf(time.Time(d))
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether the date d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// Equal reports whether d and e represent the same date.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// AddDays adds the specified amount of days.
func (d Date) AddDays(days int) Date {
	return Date(time.Time(d).AddDate(0, 0, days))
}
