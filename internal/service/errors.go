package service

import "errors"

var (
	// ErrMissingDependency is returned by [NewClientServices] when a
	// required dependency is nil.
	ErrMissingDependency = errors.New("missing service dependency")
)
