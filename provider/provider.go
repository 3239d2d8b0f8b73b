// Package provider adapts external text-generation services to one narrow
// contract: a prompt in, plain text out. Callers never see provider-specific
// response shapes; every failure mode is normalized into *Error.
package provider

import "fmt"

// Error wraps any provider-side failure: network, auth, quota or an empty
// response. The generator treats all of them as one failed attempt.
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(name string, err error) *Error {
	return &Error{Provider: name, Err: err}
}
