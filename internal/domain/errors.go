package domain

import "errors"

var (
	// ErrNotFound marks a valid request that matched nothing: an unknown
	// hotel id or an unresolvable location.
	ErrNotFound = errors.New("not found")
	// ErrUpstream marks a third-party dependency failure. It is always
	// distinguishable from a legitimate empty result.
	ErrUpstream = errors.New("upstream failure")
	// ErrBadInput marks missing or invalid caller input.
	ErrBadInput = errors.New("invalid input")
)
