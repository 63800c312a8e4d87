package domain

import (
	"fmt"
	"strconv"
	"time"
)

// ClockTime is a time of day in whole minutes after midnight.
type ClockTime int

// ParseClock parses "HH:MM" (seconds, if present, are ignored).
func ParseClock(s string) (ClockTime, error) {
	if len(s) < 5 || s[2] != ':' || (len(s) > 5 && s[5] != ':') {
		return 0, fmt.Errorf("parse clock %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	m, err := strconv.Atoi(s[3:5])
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse clock %q: out of range", s)
	}
	return ClockTime(h*60 + m), nil
}

// MustClock is ParseClock for constants; it panics on malformed input.
func MustClock(s string) ClockTime {
	t, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Add returns t shifted by d, truncated to whole minutes.
func (t ClockTime) Add(d time.Duration) ClockTime {
	return t + ClockTime(d/time.Minute)
}

// Sub returns the duration between u and t.
func (t ClockTime) Sub(u ClockTime) time.Duration {
	return time.Duration(t-u) * time.Minute
}

// String formats t as zero-padded HH:MM.
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}
