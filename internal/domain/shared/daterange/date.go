package daterange

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Layout is the canonical calendar-date layout used for keys and JSON.
const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("daterange: invalid calendar date")

// Date is a calendar date without time-of-day. The zero value is the unset date.
type Date struct {
	t time.Time
}

// NewDate builds a date from its components. Out-of-range values are normalised
// the same way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime returns the calendar date of t as observed in loc.
func FromTime(t time.Time, loc *time.Location) Date {
	if t.IsZero() {
		return Date{}
	}
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate accepts YYYY-MM-DD or an RFC3339 date-time. Date-times are reduced
// to their UTC calendar date, which is how the booking API stores them.
// An empty string yields the unset date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	if len(s) == len(Layout) {
		t, err := time.Parse(Layout, s)
		if err != nil {
			return Date{}, ErrInvalidDate
		}
		return Date{t: t}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return FromTime(t, time.UTC), nil
}

// MustParse is ParseDate for fixtures and tests.
func MustParse(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the current calendar date in loc.
func Today(now time.Time, loc *time.Location) Date {
	return FromTime(now, loc)
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Year() int          { return d.t.Year() }
func (d Date) Month() time.Month  { return d.t.Month() }
func (d Date) Day() int           { return d.t.Day() }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// AddDays moves the date by n calendar days.
func (d Date) AddDays(n int) Date {
	if d.IsZero() {
		return d
	}
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Noon returns the date at 12:00 wall-clock time in loc.
func (d Date) Noon(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc)
}

// ISODateTime formats the date as YYYY-MM-DDT00:00:00.000Z.
func (d Date) ISODateTime() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format("2006-01-02T15:04:05.000Z")
}

// String renders the canonical YYYY-MM-DD key; the unset date renders as "".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(Layout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
