package daterange

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidRange = errors.New("daterange: checkout must be after checkin")
)

// DateRange represents a stay as a half-open interval [CheckIn, CheckOut):
// CheckOut is the departure day and is not occupied by the stay itself.
type DateRange struct {
	CheckIn  Date `json:"check_in"`
	CheckOut Date `json:"check_out"`
}

func (dr DateRange) Validate() error {
	if dr.CheckOut.IsZero() || dr.CheckIn.IsZero() {
		return ErrInvalidRange
	}
	if !dr.CheckOut.After(dr.CheckIn) {
		return ErrInvalidRange
	}
	return nil
}

// NightsIn counts day boundaries between check-in and check-out. Both ends are
// pinned to noon in loc first so a DST transition cannot turn one night into
// 23 or 25 hours that then truncate to 0 or 2.
func (dr DateRange) NightsIn(loc *time.Location) int {
	if dr.Validate() != nil {
		return 0
	}
	diff := dr.CheckOut.Noon(loc).Sub(dr.CheckIn.Noon(loc))
	n := int(math.Round(diff.Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

func (dr DateRange) Overlaps(other DateRange) bool {
	return dr.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(dr.CheckOut)
}

func (dr DateRange) ContainsDate(d Date) bool {
	return !d.Before(dr.CheckIn) && d.Before(dr.CheckOut)
}

// EachNight yields every occupied date, CheckIn through the day before CheckOut.
func (dr DateRange) EachNight(fn func(Date) bool) {
	for d := dr.CheckIn; d.Before(dr.CheckOut); d = d.AddDays(1) {
		if !fn(d) {
			return
		}
	}
}

// EachInclusive yields every date from first to last, both ends included.
// Nothing is yielded when either end is unset or last precedes first.
func EachInclusive(first, last Date, fn func(Date) bool) {
	if first.IsZero() || last.IsZero() {
		return
	}
	for d := first; !d.After(last); d = d.AddDays(1) {
		if !fn(d) {
			return
		}
	}
}
