package pkgerror

import (
	"context"
	"errors"
	"fmt"
)

// PencilError is the closed failure type. HTTP and User are its only
// implementations.
type PencilError interface {
	error
	Liftable

	// Cause returns the wrapped *HTTPError for HTTP and nil for User.
	Cause() error

	pencilError()
}

// Liftable is anything convertible into a PencilError: *HTTPError,
// UserError, or a PencilError itself.
type Liftable interface {
	Lift() PencilError
}

// HTTP is the protocol-origin variant.
type HTTP struct {
	Err *HTTPError
}

// User is the application-origin variant.
type User struct {
	Err UserError
}

var (
	_ PencilError = HTTP{}
	_ PencilError = User{}
)

func (HTTP) pencilError() {}
func (User) pencilError() {}

// Error delegates to the wrapped HTTPError.
func (e HTTP) Error() string { return e.Err.Error() }

// Error delegates to the wrapped UserError.
func (e User) Error() string { return e.Err.Error() }

// Cause exposes the wrapped HTTPError so callers can inspect status and headers.
func (e HTTP) Cause() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

// Cause is always nil for application errors.
func (User) Cause() error { return nil }

func (e HTTP) Unwrap() error { return e.Cause() }
func (e User) Unwrap() error { return nil }

func (e HTTP) Lift() PencilError { return e }
func (e User) Lift() PencilError { return e }

// String returns a verbose representation for logging.
func (e HTTP) String() string {
	if e.Err == nil {
		return "Error Kind: HTTP, <nil>"
	}
	return fmt.Sprintf("Error Kind: HTTP, Code: %d, Name: %s, Description: %s", e.Err.Code(), e.Err.Name(), e.Err.Description())
}

// String returns a verbose representation for logging.
func (e User) String() string {
	return fmt.Sprintf("Error Kind: USER, Description: %s", e.Err.Desc())
}

// Lift converts l into a PencilError. A nil l yields nil.
func Lift(l Liftable) PencilError {
	if l == nil {
		return nil
	}
	return l.Lift()
}

// Text renders err without branching on its variant.
func Text(err PencilError) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Cause returns the inner *HTTPError of an HTTP failure, or nil.
func Cause(err PencilError) error {
	if err == nil {
		return nil
	}
	return err.Cause()
}

// Match calls exactly one of onHTTP or onUser depending on the variant of err.
func Match[T any](err PencilError, onHTTP func(*HTTPError) T, onUser func(UserError) T) T {
	switch e := err.(type) {
	case HTTP:
		return onHTTP(e.Err)
	case User:
		return onUser(e.Err)
	default:
		panic(fmt.Sprintf("pkgerror: unknown variant %T", err))
	}
}

// From converts any error into the taxonomy.
//
// Errors already carrying a PencilError, *HTTPError or UserError in their
// chain keep it. A deadline becomes 503, a cancellation becomes a UserError,
// and everything else becomes a UserError with err's text.
func From(err error) PencilError {
	if err == nil {
		return nil
	}

	var pe PencilError
	if errors.As(err, &pe) {
		return pe
	}

	var he *HTTPError
	if errors.As(err, &he) && he != nil {
		return he.Lift()
	}

	var ue UserError
	if errors.As(err, &ue) {
		return ue.Lift()
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ServiceUnavailable("request deadline exceeded").Lift()
	case errors.Is(err, context.Canceled):
		return UserErrorf("request canceled: %v", err).Lift()
	}

	return NewUserError(err.Error()).Lift()
}

// AsHTTP reports whether err is the HTTP variant and returns its payload.
func AsHTTP(err PencilError) (*HTTPError, bool) {
	e, ok := err.(HTTP)
	if !ok {
		return nil, false
	}
	return e.Err, true
}

// AsUser reports whether err is the User variant and returns its payload.
func AsUser(err PencilError) (UserError, bool) {
	e, ok := err.(User)
	if !ok {
		return UserError{}, false
	}
	return e.Err, true
}
