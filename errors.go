package dxstate

import "errors"

// Package errors for dxstate.
var (
	// ErrUnsupportedCapability is returned by Query for a capability tag
	// the object does not expose.
	ErrUnsupportedCapability = errors.New("dxstate: unsupported capability")
)
