package pkgrouter

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// ViewArgs maps route parameter names to the matched values.
type ViewArgs map[string]string

// Get returns the value for name, or "" when absent.
func (a ViewArgs) Get(name string) string {
	return a[name]
}

// Request is what views and hooks receive.
type Request struct {
	*http.Request

	// ViewArgs holds the parameters matched by the route, never nil.
	ViewArgs ViewArgs

	route string
}

func newRequest(r *http.Request, route string) *Request {
	return &Request{
		Request:  r,
		ViewArgs: viewArgsFromContext(r.Context()),
		route:    route,
	}
}

// Route returns the registered pattern that matched, e.g. "/notes/:id".
// It is empty for requests that matched no route.
func (r *Request) Route() string {
	return r.route
}

func viewArgsFromContext(ctx context.Context) ViewArgs {
	params := httprouter.ParamsFromContext(ctx)
	args := make(ViewArgs, len(params))
	for _, p := range params {
		args[p.Key] = p.Value
	}
	return args
}

type routeContextKey struct{}

func withRoute(route string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), routeContextKey{}, route)))
		})
	}
}

func routeFromContext(r *http.Request) string {
	if route, ok := r.Context().Value(routeContextKey{}).(string); ok && route != "" {
		return route
	}
	return r.URL.Path
}
