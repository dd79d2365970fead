package pkgrouter

import "github.com/golddranks/pencil/internal/pkg/pkgerror"

// Outcome is the result of a view or error handler: a *Response or a
// pkgerror.PencilError, never both.
//
// The zero Outcome behaves like OK(nil).
type Outcome struct {
	resp *Response
	err  pkgerror.PencilError
}

// OK reports success. A nil resp becomes an empty 204 response.
func OK(resp *Response) Outcome {
	return Outcome{resp: resp}
}

// Fail reports a failure. It accepts *pkgerror.HTTPError, pkgerror.UserError
// or an already lifted pkgerror.PencilError. A nil err is reported as an
// "unknown error" UserError.
func Fail(err pkgerror.Liftable) Outcome {
	pe := pkgerror.Lift(err)
	if pe == nil {
		pe = pkgerror.NewUserError("unknown error").Lift()
	}
	return Outcome{err: pe}
}

// Abort fails with the default HTTPError for code.
func Abort(code int) Outcome {
	return Fail(pkgerror.NewHTTPError(code))
}

// Unpack returns exactly one non-nil value.
func (o Outcome) Unpack() (*Response, pkgerror.PencilError) {
	if o.err != nil {
		return nil, o.err
	}
	if o.resp == nil {
		return noContent(), nil
	}
	return o.resp, nil
}

// Err returns the failure, or nil on success.
func (o Outcome) Err() pkgerror.PencilError {
	return o.err
}

// Response returns the response, or nil on failure.
func (o Outcome) Response() *Response {
	resp, _ := o.Unpack()
	return resp
}

// Failed reports whether o carries a failure.
func (o Outcome) Failed() bool {
	return o.err != nil
}
