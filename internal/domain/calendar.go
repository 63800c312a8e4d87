package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// Weekday numbers days Monday=1 through Sunday=7.
type Weekday int

// List of weekdays
const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayOf returns the weekday of t with Sunday remapped from 0 to 7.
func WeekdayOf(t time.Time) Weekday {
	wd := t.Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

// Valid checks if the Weekday is in 1..7
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

// DateOf drops the clock part of t.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
