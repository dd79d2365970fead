package pkgerror

import (
	"fmt"
	"net/http"
	"strings"
)

//nolint:gochecknoglobals // lookup table
var descriptions = map[int]string{
	http.StatusBadRequest:            "The browser (or proxy) sent a request that this server could not understand.",
	http.StatusUnauthorized:          "The server could not verify that you are authorized to access the URL requested.",
	http.StatusForbidden:             "You don't have the permission to access the requested resource.",
	http.StatusNotFound:              "The requested URL was not found on the server.",
	http.StatusMethodNotAllowed:      "The method is not allowed for the requested URL.",
	http.StatusNotAcceptable:         "The resource identified by the request is only capable of generating response entities which have content characteristics not acceptable according to the accept headers sent in the request.",
	http.StatusRequestTimeout:        "The server closed the network connection because the browser didn't finish the request within the specified time.",
	http.StatusConflict:              "A conflict happened while processing the request.",
	http.StatusGone:                  "The requested URL is no longer available on this server and there is no forwarding address.",
	http.StatusRequestEntityTooLarge: "The data value transmitted exceeds the capacity limit.",
	http.StatusUnsupportedMediaType:  "The server does not support the media type transmitted in the request.",
	http.StatusUnprocessableEntity:   "The request was well-formed but was unable to be followed due to semantic errors.",
	http.StatusTooManyRequests:       "This user has exceeded an allotted request count. Try again later.",
	http.StatusInternalServerError:   "The server encountered an internal error and was unable to complete your request.",
	http.StatusNotImplemented:        "The server does not support the action requested by the browser.",
	http.StatusBadGateway:            "The proxy server received an invalid response from an upstream server.",
	http.StatusServiceUnavailable:    "The server is temporarily unable to service your request due to maintenance downtime or capacity problems. Please try again later.",
	http.StatusGatewayTimeout:        "The connection to an upstream server timed out.",
}

// HTTPError is a status-coded protocol failure.
//
// It is immutable once built; Header returns a copy.
type HTTPError struct {
	code   int
	name   string
	desc   string
	header http.Header
}

// HTTPOption customizes an HTTPError at construction time.
type HTTPOption func(*HTTPError)

// WithDescription replaces the default description.
func WithDescription(desc string) HTTPOption {
	return func(e *HTTPError) {
		e.desc = desc
	}
}

// WithHeader adds a header that is sent with the rendered error page.
func WithHeader(key, value string) HTTPOption {
	return func(e *HTTPError) {
		if e.header == nil {
			e.header = http.Header{}
		}
		e.header.Add(key, value)
	}
}

// NewHTTPError builds an HTTPError for code.
//
// Codes outside 400..599 are not errors and become 500, with the rejected
// code named in the description. Error codes without a known reason phrase
// keep their value but take the 500 name and description.
func NewHTTPError(code int, opts ...HTTPOption) *HTTPError {
	if code < 400 || code > 599 {
		opts = append([]HTTPOption{
			WithDescription(fmt.Sprintf("%s (invalid error status %d)", descriptions[http.StatusInternalServerError], code)),
		}, opts...)
		code = http.StatusInternalServerError
	}

	name := http.StatusText(code)
	if name == "" {
		name = http.StatusText(http.StatusInternalServerError)
	}

	desc, ok := descriptions[code]
	if !ok {
		desc = descriptions[http.StatusInternalServerError]
	}

	e := &HTTPError{code: code, name: name, desc: desc}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Error renders the error as "<code> <name>: <description>".
func (e *HTTPError) Error() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%d %s: %s", e.code, e.name, e.desc)
}

// Code returns the HTTP status code.
func (e *HTTPError) Code() int {
	return e.code
}

// Name returns the reason phrase, e.g. "Not Found".
func (e *HTTPError) Name() string {
	return e.name
}

// Description returns the human readable explanation.
func (e *HTTPError) Description() string {
	return e.desc
}

// Header returns a copy of the extra response headers.
func (e *HTTPError) Header() http.Header {
	return e.header.Clone()
}

// Lift wraps e into the HTTP variant.
func (e *HTTPError) Lift() PencilError {
	if e == nil {
		return nil
	}

	return HTTP{Err: e}
}

// BadRequest returns a 400 error with an optional description.
func BadRequest(desc string) *HTTPError {
	return withOptionalDesc(http.StatusBadRequest, desc)
}

// Unauthorized returns a 401 error advertising the given auth scheme.
func Unauthorized(scheme string) *HTTPError {
	if scheme == "" {
		return NewHTTPError(http.StatusUnauthorized)
	}

	return NewHTTPError(http.StatusUnauthorized, WithHeader("WWW-Authenticate", scheme))
}

// Forbidden returns a 403 error.
func Forbidden(desc string) *HTTPError {
	return withOptionalDesc(http.StatusForbidden, desc)
}

// NotFound returns a 404 error.
func NotFound(desc string) *HTTPError {
	return withOptionalDesc(http.StatusNotFound, desc)
}

// MethodNotAllowed returns a 405 error carrying the Allow header.
func MethodNotAllowed(allowed ...string) *HTTPError {
	if len(allowed) == 0 {
		return NewHTTPError(http.StatusMethodNotAllowed)
	}

	return NewHTTPError(http.StatusMethodNotAllowed, WithHeader("Allow", strings.Join(allowed, ", ")))
}

// Conflict returns a 409 error.
func Conflict(desc string) *HTTPError {
	return withOptionalDesc(http.StatusConflict, desc)
}

// InternalServerError returns a 500 error.
func InternalServerError() *HTTPError {
	return NewHTTPError(http.StatusInternalServerError)
}

// ServiceUnavailable returns a 503 error.
func ServiceUnavailable(desc string) *HTTPError {
	return withOptionalDesc(http.StatusServiceUnavailable, desc)
}

func withOptionalDesc(code int, desc string) *HTTPError {
	if desc == "" {
		return NewHTTPError(code)
	}

	return NewHTTPError(code, WithDescription(desc))
}
