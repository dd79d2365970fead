// Package pkgrouter turns view functions into http.Handlers.
//
// Views, hooks and error handlers all speak Outcome: either a *Response or a
// pkgerror.PencilError. The dispatcher runs before-request hooks, the view,
// any matching error handlers, after-request hooks and finally the teardown
// hooks, in that order, for every request. Routing is backed by httprouter;
// recovery, correlation IDs and access logging are provided as middleware.
package pkgrouter
