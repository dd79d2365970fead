package pkgrouter

import (
	"net/http"
	"strings"
	"sync"

	"github.com/julienschmidt/httprouter"

	"github.com/golddranks/pencil/internal/pkg/pkgerror"
)

// Router is an http.Handler that wraps httprouter, a middleware chain and the
// hook registry of one application.
type Router struct {
	hr       *httprouter.Router
	registry *Registry

	mu  sync.RWMutex
	mws []Middleware
}

// NewRouter builds the default application router with standard middleware.
func NewRouter(uuid Generator) *Router {
	ro := &Router{
		registry: NewRegistry(),
		mws: []Middleware{
			middlewareRecoverer,
			middlewareCorrelationID(uuid),
			middlewareLogging,
		},
	}

	ro.hr = &httprouter.Router{
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		NotFound: ro.wrap("", func(http.ResponseWriter) ViewFunc {
			return func(*Request) Outcome {
				return Fail(pkgerror.NotFound(""))
			}
		}),
		MethodNotAllowed: ro.wrap("", func(w http.ResponseWriter) ViewFunc {
			// httprouter sets Allow before calling this handler.
			allow := w.Header().Get("Allow")
			return func(*Request) Outcome {
				if allow == "" {
					return Fail(pkgerror.MethodNotAllowed())
				}
				return Fail(pkgerror.MethodNotAllowed(strings.Split(allow, ", ")...))
			}
		}),
	}

	ro.GET("/", func(*Request) Outcome {
		return OK(JSON(http.StatusOK, map[string]string{"message": "hi from pencil"}))
	})

	ro.GET("/health", func(*Request) Outcome {
		return OK(JSON(http.StatusOK, map[string]string{"message": "server is running well"}))
	})

	return ro
}

// Registry returns the hook and error handler registry used by every route.
func (r *Router) Registry() *Registry {
	return r.registry
}

// Use appends middleware to the router-wide stack. The stack is resolved per
// request, so it also wraps routes registered earlier, the built-in routes
// and routing misses (404/405).
func (r *Router) Use(mws ...Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mws = append(r.mws, mws...)
}

// GET registers a GET view.
func (r *Router) GET(path string, v ViewFunc, mws ...Middleware) {
	r.Route(http.MethodGet, path, v, mws...)
}

// POST registers a POST view.
func (r *Router) POST(path string, v ViewFunc, mws ...Middleware) {
	r.Route(http.MethodPost, path, v, mws...)
}

// PUT registers a PUT view.
func (r *Router) PUT(path string, v ViewFunc, mws ...Middleware) {
	r.Route(http.MethodPut, path, v, mws...)
}

// PATCH registers a PATCH view.
func (r *Router) PATCH(path string, v ViewFunc, mws ...Middleware) {
	r.Route(http.MethodPatch, path, v, mws...)
}

// DELETE registers a DELETE view.
func (r *Router) DELETE(path string, v ViewFunc, mws ...Middleware) {
	r.Route(http.MethodDelete, path, v, mws...)
}

// Route registers v for method and path. Path parameters (":name",
// "*name") are passed to v as ViewArgs.
func (r *Router) Route(method, path string, v ViewFunc, mws ...Middleware) {
	r.hr.Handler(method, path, r.wrap(path, func(http.ResponseWriter) ViewFunc { return v }, mws...))
}

// Handle registers a raw http.Handler. It bypasses the hook pipeline.
func (r *Router) Handle(method, path string, h http.Handler, mws ...Middleware) {
	r.hr.Handler(method, path, r.chained(path, h, mws))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

func (r *Router) wrap(route string, view func(http.ResponseWriter) ViewFunc, mws ...Middleware) http.Handler {
	return r.chained(route, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.registry.snapshot().serve(w, newRequest(req, route), view(w))
	}), mws)
}

// chained defers building the middleware chain until the request arrives.
func (r *Router) chained(route string, h http.Handler, mws []Middleware) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		Chain(h, r.chain(route, mws)...).ServeHTTP(w, req)
	})
}

func (r *Router) chain(route string, mws []Middleware) []Middleware {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Middleware, 0, len(r.mws)+len(mws)+1)
	all = append(all, withRoute(route))
	all = append(all, r.mws...)
	return append(all, mws...)
}
