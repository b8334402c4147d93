package availability

import (
	"encoding/json"
	"fmt"
)

// RangeStatus classifies a proposed stay. Rejections are values, not errors.
type RangeStatus int

const (
	RangeIncomplete RangeStatus = iota
	RangeInvalidOrder
	RangePastDate
	RangeTooLong
	RangeConflict
	RangeValid
)

var rangeStatusNames = map[RangeStatus]string{
	RangeIncomplete:   "incomplete",
	RangeInvalidOrder: "invalid_order",
	RangePastDate:     "past_date",
	RangeTooLong:      "too_long",
	RangeConflict:     "conflict",
	RangeValid:        "valid",
}

func (s RangeStatus) String() string {
	if name, ok := rangeStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s RangeStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s RangeStatus) Submittable() bool { return s == RangeValid }

// Message is the inline text shown to the user. Incomplete or inverted
// ranges just keep submit disabled and past dates are never selectable.
func (s RangeStatus) Message() string {
	switch s {
	case RangeConflict:
		return "Selected dates overlap an existing booking."
	case RangeTooLong:
		return fmt.Sprintf("Stays are limited to %d nights.", MaxStayNights)
	default:
		return ""
	}
}
