// Package guard provides the constructor guard used by value objects, entities
// and commands to tell a properly constructed value from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as created through its constructor.
// Embed it as a private field and set it with NewConstructorGuard:
//
//	type CartLine struct {
//	    quantity int
//	    guard    guard.ConstructorGuard
//	}
//
//	func (l CartLine) Validate() error {
//	    return l.guard.Validate(ErrCartLineIsNotConstructed)
//	}
//
// A zero-value struct fails validation, so data that bypassed the constructor
// cannot reach a repository or a pricing run.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
