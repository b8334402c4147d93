package availability

import "holidaze/internal/domain/shared/daterange"

type SelectorState string

const (
	StateEmpty           SelectorState = "empty"
	StateCheckInSelected SelectorState = "check_in_selected"
	StateRangeSelected   SelectorState = "range_selected"
)

// Selector tracks a check-in/check-out pick sequence against a fixed blocked set.
type Selector struct {
	minDate  daterange.Date
	blocked  BlockedDates
	checkIn  daterange.Date
	checkOut daterange.Date
}

func NewSelector(minDate daterange.Date, blocked BlockedDates) *Selector {
	return &Selector{minDate: minDate, blocked: blocked}
}

// RestoreSelector rebuilds a selector from picks made earlier. A check-out
// without a check-in is dropped.
func RestoreSelector(minDate daterange.Date, blocked BlockedDates, checkIn, checkOut daterange.Date) *Selector {
	s := NewSelector(minDate, blocked)
	if checkIn.IsZero() {
		return s
	}
	s.checkIn = checkIn
	s.checkOut = checkOut
	return s
}

func (s *Selector) CheckIn() daterange.Date  { return s.checkIn }
func (s *Selector) CheckOut() daterange.Date { return s.checkOut }

// Selectable reports whether d may be picked as a check-in.
func (s *Selector) Selectable(d daterange.Date) bool {
	if d.IsZero() || s.blocked.Contains(d) {
		return false
	}
	return s.minDate.IsZero() || !d.Before(s.minDate)
}

// PickCheckIn returns false and leaves the selector untouched when d is not
// selectable. Picking on or after the current check-out clears it.
func (s *Selector) PickCheckIn(d daterange.Date) bool {
	if !s.Selectable(d) {
		return false
	}
	s.checkIn = d
	if !s.checkOut.IsZero() && !d.Before(s.checkOut) {
		s.checkOut = daterange.Date{}
	}
	return true
}

// PickCheckOut requires a check-in; the resulting range is classified by Status.
func (s *Selector) PickCheckOut(d daterange.Date) bool {
	if s.checkIn.IsZero() || d.IsZero() {
		return false
	}
	s.checkOut = d
	return true
}

func (s *Selector) Reset() {
	s.checkIn = daterange.Date{}
	s.checkOut = daterange.Date{}
}

func (s *Selector) State() SelectorState {
	switch {
	case s.checkIn.IsZero():
		return StateEmpty
	case s.checkOut.IsZero():
		return StateCheckInSelected
	default:
		return StateRangeSelected
	}
}

func (s *Selector) Status() RangeStatus {
	return ValidateRange(s.checkIn, s.checkOut, s.minDate, s.blocked)
}

func (s *Selector) CanSubmit() bool {
	return s.State() == StateRangeSelected && s.Status().Submittable()
}
