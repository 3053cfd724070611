// Package guard provides the ConstructorGuard pattern used by commands, queries,
// and domain objects to ensure they are only created through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects, commands, and queries are only created
// through their designated constructor functions. A zero-value struct fails
// validation because the internal flag is only set by NewConstructorGuard.
//
// Example usage:
//
//	var ErrTokenNotConstructed = errors.New("Token must be created via NewToken")
//
//	type Token struct {
//	    value string
//	    guard ConstructorGuard
//	}
//
//	func NewToken(value string) (Token, error) {
//	    if value == "" {
//	        return Token{}, errors.New("value is required")
//	    }
//	    return Token{value: value, guard: NewConstructorGuard()}, nil
//	}
//
//	func (t Token) Validate() error {
//	    return t.guard.Validate(ErrTokenNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
// Call it in the constructor of objects that embed a ConstructorGuard.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its constructor.
// Returns the provided validationError for zero-value objects, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
