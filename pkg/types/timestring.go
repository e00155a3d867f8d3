package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const timeLayout = "15:04"

// TimeString is a wall-clock time of day in "HH:MM" form.
// Slot boundaries are wall-clock values in the business timezone,
// never instants, so they survive DST transitions and serialization.
type TimeString string

// NewTimeString creates a TimeString from the clock component of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the value is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the "HH:MM" format. "24:00" is accepted as an
// exclusive end-of-day boundary.
func (t TimeString) Validate() error {
	if _, err := t.minutes(); err != nil {
		return err
	}
	return nil
}

// Minutes returns the value as minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	return t.minutes()
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a > b
}

// AddMinutes returns the time n minutes later. The result may be
// exactly "24:00" (end of day) but must not roll past midnight.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	m, err := t.minutes()
	if err != nil {
		return "", err
	}
	m += n
	if m < 0 || m > 24*60 {
		return "", fmt.Errorf("time %q plus %d minutes is out of range", t, n)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

func (t TimeString) minutes() (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time string format: %q", t)
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("invalid time string format: %q", t)
	}
	return h*60 + m, nil
}

// Value implements driver.Valuer so TimeString binds to TIME columns.
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner. lib/pq returns TIME columns as time.Time
// or raw text depending on the wire format; both are accepted.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	// TIME columns come back as "HH:MM:SS"; keep only "HH:MM".
	if len(s) > len(timeLayout) {
		s = s[:len(timeLayout)]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
