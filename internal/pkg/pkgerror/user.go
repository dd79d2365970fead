package pkgerror

import "fmt"

// UserError is an application failure described only by text.
//
// It has no cause: application errors end the cause chain.
type UserError struct {
	desc string
}

// NewUserError builds a UserError with desc as its description.
func NewUserError(desc string) UserError {
	return UserError{desc: desc}
}

// UserErrorf builds a UserError from a format string.
func UserErrorf(format string, args ...any) UserError {
	return UserError{desc: fmt.Sprintf(format, args...)}
}

// Desc returns the description exactly as given.
func (e UserError) Desc() string {
	return e.desc
}

// Error implements the error interface.
func (e UserError) Error() string {
	return e.desc
}

// Lift wraps e into the User variant.
func (e UserError) Lift() PencilError {
	return User{Err: e}
}
