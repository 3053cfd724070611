package order

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// ActionType classifies a history entry by the mutation that produced it.
type ActionType int

const (
	// ActionUnknown represents an invalid or undefined action type.
	ActionUnknown ActionType = iota

	// ActionCreate records order creation.
	ActionCreate

	// ActionUpdate records a partial update of order details.
	ActionUpdate

	// ActionAssignInstaller records an installer assignment.
	ActionAssignInstaller

	// ActionChangeStatus records a status change.
	ActionChangeStatus

	// ActionAddComment records a comment added to the order.
	ActionAddComment
)

func getActionTypeStrings() map[ActionType]string {
	return map[ActionType]string{
		ActionUnknown:         "unknown",
		ActionCreate:          "create",
		ActionUpdate:          "update",
		ActionAssignInstaller: "assign_installer",
		ActionChangeStatus:    "change_status",
		ActionAddComment:      "add_comment",
	}
}

// ActionTypeFromString parses the wire representation of an action type.
// Accepted values are "create", "update", "assign_installer",
// "change_status", and "add_comment".
func ActionTypeFromString(s string) (ActionType, error) {
	for action, str := range getActionTypeStrings() {
		if action != ActionUnknown && str == s {
			return action, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("actionType", fmt.Errorf("%q is not a valid action type", s))
}

// Validate checks if the ActionType is one of the five defined actions.
func (a ActionType) Validate() error {
	if a == ActionUnknown {
		return errs.NewValueIsInvalidError("actionType")
	}
	if _, ok := getActionTypeStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("actionType", fmt.Errorf("%d is not a valid action type", a))
	}
	return nil
}

// String returns the snake_case name of the action type, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (a ActionType) String() string {
	if str, ok := getActionTypeStrings()[a]; ok {
		return str
	}
	return "unknown"
}
