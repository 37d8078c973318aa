// Package datekey normalizes dates to timezone-stable YYYY-MM-DD keys.
//
// Keys are derived from the local (wall-clock) reading of a time.Time, never
// from its UTC conversion, so a date constructed at midnight local time maps
// to the same calendar day in every host timezone.
package datekey

import (
	"errors"
	"fmt"
	"time"
)

const layout = "2006-01-02"

var ErrInvalidKey = errors.New("datekey: invalid date key")

// Key is a calendar day in YYYY-MM-DD form.
type Key string

// FromTime returns the key for t's local calendar day. Two times yield the
// same key iff they fall on the same local calendar day.
func FromTime(t time.Time) Key {
	y, m, d := t.Date()
	return Key(fmt.Sprintf("%04d-%02d-%02d", y, int(m), d))
}

// Parse validates s as a YYYY-MM-DD key. Malformed input fails with
// ErrInvalidKey rather than degrading to a meaningless key.
func Parse(s string) (Key, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	// time.Parse accepts some non-canonical spellings; round-trip to reject them.
	if t.Format(layout) != s {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return Key(s), nil
}

// Today returns the key for the current day in loc (time.Local when nil).
func Today(loc *time.Location) Key {
	if loc == nil {
		loc = time.Local
	}
	return FromTime(time.Now().In(loc))
}

func (k Key) IsValid() bool {
	_, err := Parse(string(k))
	return err == nil
}

// Time materializes the key at midnight in loc (time.Local when nil).
func (k Key) Time(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(layout, string(k), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidKey, k)
	}
	return t, nil
}

// AddDays shifts the key by n calendar days.
func (k Key) AddDays(n int) (Key, error) {
	t, err := k.Time(time.UTC)
	if err != nil {
		return "", err
	}
	return FromTime(t.AddDate(0, 0, n)), nil
}

// Weekday reports the key's day of week.
func (k Key) Weekday() (time.Weekday, error) {
	t, err := k.Time(time.UTC)
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}

func (k Key) String() string { return string(k) }
