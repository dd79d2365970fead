// Package pkgerror defines the closed failure taxonomy shared by every view,
// hook and error handler.
//
// A PencilError is exactly one of two variants:
//   - HTTP wraps a status-coded protocol failure (*HTTPError).
//   - User wraps an opaque application failure (UserError).
//
// Both concrete errors lift implicitly: anything that accepts a Liftable
// takes a bare *HTTPError or UserError. Foreign errors must be converted with
// From before they leave a handler.
package pkgerror
