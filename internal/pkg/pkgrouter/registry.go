package pkgrouter

import (
	"maps"
	"sync"

	"github.com/golddranks/pencil/internal/pkg/pkgerror"
)

// DefaultMaxErrorHops bounds how many error handlers one request may chain
// through before the last failure is treated as unresolved.
const DefaultMaxErrorHops = 8

// ViewFunc handles a routed request.
type ViewFunc func(r *Request) Outcome

// BeforeRequestFunc runs before the view. Returning true short-circuits the
// request with the returned Outcome.
type BeforeRequestFunc func(r *Request) (Outcome, bool)

// AfterRequestFunc may modify the final response. It only runs when the
// request produced a response.
type AfterRequestFunc func(r *Request, resp *Response)

// TeardownRequestFunc runs once at the end of every request. err is the
// unresolved failure, or nil.
type TeardownRequestFunc func(r *Request, err pkgerror.PencilError)

// HTTPErrorHandler turns a protocol failure into a new Outcome.
type HTTPErrorHandler func(e *pkgerror.HTTPError) Outcome

// UserErrorHandler turns an application failure into a new Outcome.
type UserErrorHandler func(e pkgerror.UserError) Outcome

// Registry holds the hooks and error handlers of one application.
//
// It is safe for concurrent use. Registration copies the handler set, so a
// request in flight keeps the set it started with.
type Registry struct {
	mu  sync.RWMutex
	cur *handlers
}

type handlers struct {
	before   []BeforeRequestFunc
	after    []AfterRequestFunc
	teardown []TeardownRequestFunc
	http     map[int]HTTPErrorHandler
	user     UserErrorHandler
	maxHops  int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cur: &handlers{
		http:    map[int]HTTPErrorHandler{},
		maxHops: DefaultMaxErrorHops,
	}}
}

// BeforeRequest appends f to the before-request hooks.
func (g *Registry) BeforeRequest(f BeforeRequestFunc) {
	g.update(func(h *handlers) { h.before = append(h.before, f) })
}

// AfterRequest appends f to the after-request hooks.
func (g *Registry) AfterRequest(f AfterRequestFunc) {
	g.update(func(h *handlers) { h.after = append(h.after, f) })
}

// TeardownRequest appends f to the teardown hooks.
func (g *Registry) TeardownRequest(f TeardownRequestFunc) {
	g.update(func(h *handlers) { h.teardown = append(h.teardown, f) })
}

// HTTPErrorHandler sets the handler for HTTP failures with the given status,
// replacing any previous one.
func (g *Registry) HTTPErrorHandler(code int, f HTTPErrorHandler) {
	g.update(func(h *handlers) { h.http[code] = f })
}

// UserErrorHandler sets the handler for application failures, replacing any
// previous one.
func (g *Registry) UserErrorHandler(f UserErrorHandler) {
	g.update(func(h *handlers) { h.user = f })
}

// SetMaxErrorHops changes the error handler chaining bound. Values below 1
// restore DefaultMaxErrorHops.
func (g *Registry) SetMaxErrorHops(n int) {
	if n < 1 {
		n = DefaultMaxErrorHops
	}
	g.update(func(h *handlers) { h.maxHops = n })
}

func (g *Registry) update(fn func(h *handlers)) {
	g.mu.Lock()
	defer g.mu.Unlock()

	next := &handlers{
		before:   append([]BeforeRequestFunc(nil), g.cur.before...),
		after:    append([]AfterRequestFunc(nil), g.cur.after...),
		teardown: append([]TeardownRequestFunc(nil), g.cur.teardown...),
		http:     maps.Clone(g.cur.http),
		user:     g.cur.user,
		maxHops:  g.cur.maxHops,
	}
	fn(next)

	g.cur = next
}

func (g *Registry) snapshot() *handlers {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cur
}

// lookup returns the handler call for err, or nil when none is registered.
func (h *handlers) lookup(err pkgerror.PencilError) func() Outcome {
	return pkgerror.Match(err,
		func(e *pkgerror.HTTPError) func() Outcome {
			f, ok := h.http[e.Code()]
			if !ok {
				return nil
			}
			return func() Outcome { return f(e) }
		},
		func(e pkgerror.UserError) func() Outcome {
			if h.user == nil {
				return nil
			}
			return func() Outcome { return h.user(e) }
		},
	)
}
