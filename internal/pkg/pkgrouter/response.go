package pkgrouter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/golddranks/pencil/internal/pkg/pkgerror"
)

const contentTypeJSON = "application/json; charset=utf-8"

// Response is a fully built, wire-ready reply.
//
// After-request hooks receive it by pointer and may change any field.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewResponse returns a 200 text/plain response.
func NewResponse(body string) *Response {
	return &Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": {"text/plain; charset=utf-8"}},
		Body:       []byte(body),
	}
}

// JSON encodes v as the body of a response with the given status.
func JSON(status int, v any) *Response {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("server: failed to encode data to json", "error", err)
		return fallbackResponse()
	}

	return &Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {contentTypeJSON}},
		Body:       append(body, '\n'),
	}
}

// Envelope wraps v in the standard success envelope
// {"message": ..., "data": ..., "meta": ...}.
//
// v may implement StatusCode() int, Message() string and Meta() map[string]any
// to customize the envelope. A nil v or a 204 status yields an empty body.
func Envelope(v any) *Response {
	code := http.StatusOK
	if sc, ok := v.(interface{ StatusCode() int }); ok {
		code = sc.StatusCode()
	}

	if code == http.StatusNoContent || v == nil {
		return noContent()
	}

	msg := "request has been successfully"
	if m, ok := v.(interface{ Message() string }); ok {
		msg = m.Message()
	}

	var meta map[string]any
	if m, ok := v.(interface{ Meta() map[string]any }); ok {
		meta = m.Meta()
	}

	return JSON(code, successResponse{Message: msg, Data: v, Meta: meta})
}

// Redirect returns a response pointing the client at location.
func Redirect(location string, code int) *Response {
	if code < 300 || code > 399 {
		code = http.StatusFound
	}

	return &Response{
		StatusCode: code,
		Header:     http.Header{"Location": {location}},
	}
}

func noContent() *Response {
	return &Response{StatusCode: http.StatusNoContent, Header: http.Header{}}
}

type successResponse struct {
	Message string         `json:"message"`
	Data    any            `json:"data"`
	Meta    map[string]any `json:"meta,omitempty"`
}

type errorResponse struct {
	Message string         `json:"message"`
	Error   map[string]any `json:"error,omitempty"`
}

// renderHTTPError is the page an HTTPError produces when no handler is
// registered for its status.
func renderHTTPError(e *pkgerror.HTTPError) *Response {
	resp := JSON(e.Code(), errorResponse{
		Message: e.Description(),
		Error: map[string]any{
			"code": e.Code(),
			"name": e.Name(),
		},
	})

	for k, vs := range e.Header() {
		for _, v := range vs {
			resp.Header.Add(k, v)
		}
	}

	return resp
}

// fallbackResponse is sent when nothing resolved an application failure.
func fallbackResponse() *Response {
	return &Response{
		StatusCode: http.StatusInternalServerError,
		Header:     http.Header{"Content-Type": {contentTypeJSON}},
		Body:       []byte(`{"message":"Internal server error"}` + "\n"),
	}
}

func (r *Response) write(w http.ResponseWriter) {
	h := w.Header()
	for k, vs := range r.Header {
		h[k] = append([]string(nil), vs...)
	}

	code := r.StatusCode
	switch {
	case code == 0:
		code = http.StatusOK
	case !validStatus(code):
		slog.Error("server: invalid response status", "status", code)
		code = http.StatusInternalServerError
	}

	if len(r.Body) > 0 {
		h.Set("Content-Length", strconv.Itoa(len(r.Body)))
	}

	w.WriteHeader(code)

	if len(r.Body) == 0 {
		return
	}

	if _, err := w.Write(r.Body); err != nil {
		slog.Error("server: failed to write response body", "error", err)
	}
}

// validStatus reports whether code can be passed to WriteHeader.
func validStatus(code int) bool {
	return code >= 100 && code <= 999
}
