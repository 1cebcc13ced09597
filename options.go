package dxstate

import "github.com/gogpu/dxstate/pipeline"

// Option configures a state object during creation.
//
// Example:
//
//	// Observe decode diagnostics instead of logging them:
//	state := dxstate.NewBlendState(desc, dxstate.WithDiagnostics(func(d dxstate.Diagnostic) {
//	    seen = append(seen, d)
//	}))
type Option func(*stateOptions)

// stateOptions holds optional configuration for state-object creation.
type stateOptions struct {
	report DiagnosticFunc
	device pipeline.DeviceID
}

// defaultStateOptions returns the default creation options: diagnostics go
// to the package logger, no owning device.
func defaultStateOptions() stateOptions {
	return stateOptions{
		report: logDiagnostic,
		device: pipeline.InvalidDeviceID,
	}
}

// WithDiagnostics installs fn as the diagnostic sink for the object being
// created. The func is called synchronously during construction (for
// invalid enumerants) and during capability queries (for unsupported tags).
// Passing nil restores the default sink, the package logger.
func WithDiagnostics(fn DiagnosticFunc) Option {
	return func(o *stateOptions) {
		if fn == nil {
			fn = logDiagnostic
		}
		o.report = fn
	}
}

// WithDevice records the device that owns the object being created. The ID
// is a non-owning back-reference returned by Device; it has no effect on
// decoding or binding.
func WithDevice(id pipeline.DeviceID) Option {
	return func(o *stateOptions) {
		o.device = id
	}
}
