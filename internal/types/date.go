// Package types implements special types for the stockledger backend.
package types

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day without a time component.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// String returns the date formatted as DD-MM-YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", time.Time(d).Day(), time.Time(d).Month(), time.Time(d).Year())
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the result of d.String().
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The date is expected to be a string in DD-MM-YYYY format.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	date, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = date
	return nil
}

// ParseDate parses a "DD-MM-YYYY" string and returns the Date value it represents.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("02-01-2006", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// DateOf returns the Date on which a time occurs, in UTC.
func DateOf(t time.Time) Date {
	year, month, day := t.In(time.UTC).Date()
	return NewDate(year, month, day)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Time returns the first instant of the day in UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// Next returns the first instant of the following day in UTC.
// It is used as the exclusive upper bound for inclusive day ranges.
func (d Date) Next() time.Time {
	return time.Time(d).AddDate(0, 0, 1)
}
