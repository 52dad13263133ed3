// Package guard provides ConstructorGuard, a marker embedded in commands, queries
// and value objects to detect instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. A zero value means the
// owning struct was instantiated directly and has not been validated.
//
// Example:
//
//	type FinalizeOrderDetailCommand struct {
//	    detailID kernel.ID
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c FinalizeOrderDetailCommand) Validate() error {
//	    return c.guard.Validate(ErrFinalizeOrderDetailCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not created through NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
