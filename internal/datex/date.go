// Package datex implements calendar-day arithmetic over ISO date strings.
//
// Dates are interpreted at local noon before any arithmetic so a day shift
// can never land on the neighbouring date because of a midnight or DST edge.
package datex

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the ISO calendar date format used across primezone.
const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// Anchor parses iso as 12:00 in loc.
func Anchor(iso string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(Layout, iso, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, iso)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc), nil
}

// Shift moves iso by offsetDays calendar days in the local time zone.
func Shift(iso string, offsetDays int) (string, error) {
	return ShiftIn(iso, offsetDays, time.Local)
}

// ShiftIn is Shift with an explicit location.
func ShiftIn(iso string, offsetDays int, loc *time.Location) (string, error) {
	t, err := Anchor(iso, loc)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, offsetDays).Format(Layout), nil
}

// Today formats now's calendar date in now's own location.
func Today(now time.Time) string {
	return now.Format(Layout)
}

// Valid reports whether iso parses as a calendar date.
func Valid(iso string) bool {
	_, err := time.Parse(Layout, iso)
	return err == nil
}
