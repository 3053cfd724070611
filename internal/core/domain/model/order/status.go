package order

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The status graph is deliberately flat: any valid status can be set from any
// other, including reopening a completed order. Orders start in InProgress.
//
// Status is a value object that validates its values and provides string
// representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// InProgress is the initial status of every order.
	InProgress

	// NeedsRework indicates completed work was rejected and must be redone.
	NeedsRework

	// Completed indicates the installation work is done. Not terminal: an
	// installer may move the order back to any other status.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		InProgress:    "in_progress",
		NeedsRework:   "needs_rework",
		Completed:     "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		InProgress:  "in_progress",
		NeedsRework: "needs_rework",
		Completed:   "completed",
	}
}

// StatusFromString parses the wire representation of a status.
// Accepted values are "in_progress", "needs_rework", and "completed".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the three defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
