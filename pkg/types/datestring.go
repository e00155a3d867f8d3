package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateString is a zone-naive calendar date in "YYYY-MM-DD" form.
// The business calendar works in dates, not instants; keeping dates
// as plain values avoids off-by-one-day bugs around midnight.
type DateString string

// NewDateString creates a DateString from the calendar date of t,
// in t's own location.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString parses and validates a "YYYY-MM-DD" string.
func NewDateStringFromString(s string) (DateString, error) {
	ds := DateString(s)
	if err := ds.Validate(); err != nil {
		return "", err
	}
	return ds, nil
}

func (d DateString) String() string {
	return string(d)
}

// IsZero returns true if the value is unset.
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate checks the "YYYY-MM-DD" format and that the date exists.
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("invalid date string format: %q", d)
	}
	return nil
}

// Time returns midnight of the date in the given location.
func (d DateString) Time(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, string(d), loc)
}

// AddDays returns the date n days later.
func (d DateString) AddDays(n int) (DateString, error) {
	t, err := d.Time(time.UTC)
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, n)), nil
}

// Weekday returns the day of week (Sunday = 0).
func (d DateString) Weekday() (time.Weekday, error) {
	t, err := d.Time(time.UTC)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// Value implements driver.Valuer so DateString binds to DATE columns.
func (d DateString) Value() (driver.Value, error) {
	return string(d), nil
}

// Scan implements sql.Scanner. lib/pq returns DATE columns as time.Time.
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = NewDateString(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into DateString", src)
	}
}

func (d *DateString) scanString(s string) error {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := NewDateStringFromString(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
