package pkgrouter

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// middlewareRecoverer catches panics that escape the dispatcher, such as a
// failing ResponseWriter, or that come from a raw handler registered with
// Handle.
//
//nolint:errcheck,gosec,contextcheck // ignore error
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				//nolint:err113,errorlint // this must compare directly
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				slog.ErrorContext(r.Context(), "panic on the server", "because", rvr, "stack", string(debug.Stack()))

				if r.Header.Get("Connection") == "Upgrade" {
					return
				}

				fallbackResponse().write(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
