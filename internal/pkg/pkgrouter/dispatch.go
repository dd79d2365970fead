package pkgrouter

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/golddranks/pencil/internal/pkg/pkgerror"
)

// serve runs the full request pipeline and writes the response.
//
// Teardown hooks run from a defer, so they observe the request even when a
// later stage panics. A panic that escapes the pipeline is reported to them
// as a UserError before it is re-raised.
func (h *handlers) serve(w http.ResponseWriter, req *Request, view ViewFunc) {
	var terminal pkgerror.PencilError
	defer func() {
		rvr := recover()
		if rvr != nil && terminal == nil {
			terminal = panicError("dispatcher", rvr)
		}

		h.runTeardown(req, terminal)

		if rvr != nil {
			panic(rvr)
		}
	}()

	outcome, stopped := h.preprocess(req)
	if !stopped {
		outcome = h.callView(req, view)
	}

	var resp *Response
	resp, terminal = h.resolve(req, outcome)
	if terminal == nil {
		if err := h.postprocess(req, resp); err != nil {
			resp, terminal = fallbackResponse(), err
		} else if err := checkStatus(resp); err != nil {
			resp, terminal = fallbackResponse(), err
		}
	}

	resp.write(w)
}

func (h *handlers) preprocess(req *Request) (Outcome, bool) {
	for _, f := range h.before {
		var stop bool
		outcome, panicked := guard(req, "before-request hook", func() Outcome {
			out, ok := f(req)
			stop = ok
			return out
		})
		if stop || panicked {
			return outcome, true
		}
	}

	return Outcome{}, false
}

func (h *handlers) callView(req *Request, view ViewFunc) Outcome {
	if err := req.Context().Err(); err != nil {
		return Fail(pkgerror.From(err))
	}

	outcome, _ := guard(req, "view", func() Outcome { return view(req) })
	return outcome
}

// resolve feeds failures through the registered error handlers until a
// response emerges, no handler matches, or maxHops is reached.
//
// An HTTP failure nobody handled renders its own page and counts as resolved.
// A User failure nobody handled yields the fallback response and is returned
// as the terminal error.
func (h *handlers) resolve(req *Request, outcome Outcome) (*Response, pkgerror.PencilError) {
	resp, err := outcome.Unpack()

	for hop := 0; err != nil && hop < h.maxHops; hop++ {
		handle := h.lookup(err)
		if handle == nil {
			break
		}

		outcome, _ = guard(req, "error handler", handle)
		resp, err = outcome.Unpack()
	}

	if err == nil {
		if bad := checkStatus(resp); bad != nil {
			return fallbackResponse(), bad
		}
		return resp, nil
	}

	if he, ok := pkgerror.AsHTTP(err); ok {
		return renderHTTPError(he), nil
	}

	return fallbackResponse(), err
}

// checkStatus rejects a response whose status cannot be written. Zero means
// 200.
func checkStatus(resp *Response) pkgerror.PencilError {
	if resp.StatusCode == 0 || validStatus(resp.StatusCode) {
		return nil
	}
	return pkgerror.UserErrorf("invalid response status %d", resp.StatusCode).Lift()
}

// postprocess runs the after-request hooks. A panicking hook stops the rest
// and its failure is returned.
func (h *handlers) postprocess(req *Request, resp *Response) pkgerror.PencilError {
	for _, f := range h.after {
		outcome, panicked := guard(req, "after-request hook", func() Outcome {
			f(req, resp)
			return Outcome{}
		})
		if panicked {
			return outcome.Err()
		}
	}

	return nil
}

func (h *handlers) runTeardown(req *Request, err pkgerror.PencilError) {
	for _, f := range h.teardown {
		func() {
			defer func() {
				if rvr := recover(); rvr != nil {
					slog.ErrorContext(req.Context(), "panic in teardown hook", "because", rvr, "stack", string(debug.Stack()))
				}
			}()
			f(req, err)
		}()
	}
}

// guard converts a panic in fn into a UserError failure.
//
//nolint:errorlint // http.ErrAbortHandler must be compared directly
func guard(req *Request, stage string, fn func() Outcome) (outcome Outcome, panicked bool) {
	defer func() {
		if rvr := recover(); rvr != nil {
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			slog.ErrorContext(req.Context(), "panic in "+stage, "because", rvr, "stack", string(debug.Stack()))

			outcome = Fail(panicError(stage, rvr))
			panicked = true
		}
	}()

	return fn(), false
}

func panicError(stage string, rvr any) pkgerror.PencilError {
	return pkgerror.NewUserError(fmt.Sprintf("panic in %s: %v", stage, rvr)).Lift()
}
