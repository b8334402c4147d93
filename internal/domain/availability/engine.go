package availability

import (
	"math"
	"sort"
	"time"

	"holidaze/internal/domain/booking"
	"holidaze/internal/domain/shared/daterange"
)

// MaxStayNights bounds a single proposed stay.
const MaxStayNights = 365

// MaxListedSpan bounds how many days one reservation contributes to the
// listed set. Days past it are still blocked but only tracked as a span.
const MaxListedSpan = 2 * 366

// BlockedDates is the set of calendar dates unavailable for a new check-in.
// The zero value is an empty set.
type BlockedDates struct {
	days map[string]daterange.Date
	// tails are the unlisted remainders of oversized reservations, half-open.
	tails []daterange.DateRange
}

func NewBlockedDates(dates ...daterange.Date) BlockedDates {
	b := BlockedDates{days: make(map[string]daterange.Date, len(dates))}
	for _, d := range dates {
		b.add(d)
	}
	return b
}

func (b *BlockedDates) add(d daterange.Date) {
	if d.IsZero() {
		return
	}
	if b.days == nil {
		b.days = make(map[string]daterange.Date)
	}
	b.days[d.String()] = d
}

func (b BlockedDates) Contains(d daterange.Date) bool {
	if _, ok := b.days[d.String()]; ok {
		return true
	}
	for _, tail := range b.tails {
		if tail.ContainsDate(d) {
			return true
		}
	}
	return false
}

// Len counts the listed dates.
func (b BlockedDates) Len() int { return len(b.days) }

// Truncated reports whether some reservation was too long to list in full.
func (b BlockedDates) Truncated() bool { return len(b.tails) > 0 }

// Sorted lists the blocked dates as YYYY-MM-DD keys in ascending order.
func (b BlockedDates) Sorted() []string {
	out := make([]string, 0, len(b.days))
	for k := range b.days {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ComputeBlockedDates marks every date of every reservation as blocked,
// dateFrom through dateTo inclusive. The departure day of an existing stay is
// therefore unavailable for a new check-in. The reservation with id exclude
// (normally the one being edited) is skipped; pass "" to keep all.
// A reservation longer than MaxListedSpan days lists its first MaxListedSpan
// days; the rest stays blocked through Contains.
func ComputeBlockedDates(bookings []booking.Reservation, exclude booking.ID) BlockedDates {
	blocked := NewBlockedDates()
	for _, r := range bookings {
		if exclude != "" && r.ID == exclude {
			continue
		}
		if r.DateFrom.IsZero() || r.DateTo.IsZero() || r.DateTo.Before(r.DateFrom) {
			continue
		}
		last := r.DateTo
		if cut := r.DateFrom.AddDays(MaxListedSpan); !cut.After(last) {
			blocked.tails = append(blocked.tails, daterange.DateRange{CheckIn: cut, CheckOut: last.AddDays(1)})
			last = cut.AddDays(-1)
		}
		daterange.EachInclusive(r.DateFrom, last, func(d daterange.Date) bool {
			blocked.add(d)
			return true
		})
	}
	return blocked
}

// Nights is NightsIn evaluated in UTC.
func Nights(checkIn, checkOut daterange.Date) int {
	return NightsIn(checkIn, checkOut, time.UTC)
}

// NightsIn returns the billable nights between two dates, 0 when either is
// unset or checkOut is not after checkIn.
func NightsIn(checkIn, checkOut daterange.Date, loc *time.Location) int {
	return daterange.DateRange{CheckIn: checkIn, CheckOut: checkOut}.NightsIn(loc)
}

// ComputeTotal is nights * pricePerNight; negative inputs count as zero.
func ComputeTotal(nights int, pricePerNight float64) float64 {
	if nights <= 0 || pricePerNight <= 0 || math.IsNaN(pricePerNight) {
		return 0
	}
	return float64(nights) * pricePerNight
}

// HasConflict reports whether any occupied night of [checkIn, checkOut) is
// blocked. It walks whichever of the stay and the listed set is shorter.
func HasConflict(checkIn, checkOut daterange.Date, blocked BlockedDates) bool {
	stay := daterange.DateRange{CheckIn: checkIn, CheckOut: checkOut}
	if stay.Validate() != nil {
		return false
	}
	for _, tail := range blocked.tails {
		if stay.Overlaps(tail) {
			return true
		}
	}
	if blocked.Len() == 0 {
		return false
	}
	if stayDays(stay) > blocked.Len() {
		for _, d := range blocked.days {
			if stay.ContainsDate(d) {
				return true
			}
		}
		return false
	}
	conflict := false
	stay.EachNight(func(d daterange.Date) bool {
		if _, ok := blocked.days[d.String()]; ok {
			conflict = true
			return false
		}
		return true
	})
	return conflict
}

// stayDays is the calendar length of a valid stay, ignoring time zones.
func stayDays(stay daterange.DateRange) int {
	return int(stay.CheckOut.Noon(time.UTC).Sub(stay.CheckIn.Noon(time.UTC)).Hours() / 24)
}

// ValidateRange is the gate every create or update request must pass.
func ValidateRange(checkIn, checkOut, minDate daterange.Date, blocked BlockedDates) RangeStatus {
	switch {
	case checkIn.IsZero() || checkOut.IsZero():
		return RangeIncomplete
	case !checkOut.After(checkIn):
		return RangeInvalidOrder
	case !minDate.IsZero() && checkIn.Before(minDate):
		return RangePastDate
	case stayDays(daterange.DateRange{CheckIn: checkIn, CheckOut: checkOut}) > MaxStayNights:
		return RangeTooLong
	case HasConflict(checkIn, checkOut, blocked):
		return RangeConflict
	default:
		return RangeValid
	}
}
