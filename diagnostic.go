package dxstate

import "log/slog"

// DiagnosticKind classifies a reported condition.
type DiagnosticKind uint32

// Diagnostic kinds.
const (
	// DiagInvalidBlendFactor reports a blend-factor enumerant outside the
	// defined set. The decoder substitutes BlendFactorZero.
	DiagInvalidBlendFactor DiagnosticKind = iota

	// DiagInvalidBlendOp reports a blend-operation enumerant outside the
	// defined set. The decoder substitutes BlendOpAdd.
	DiagInvalidBlendOp

	// DiagUnsupportedCapability reports a Query for a capability the
	// object does not expose.
	DiagUnsupportedCapability
)

// String returns the diagnostic kind name.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagInvalidBlendFactor:
		return "InvalidBlendFactor"
	case DiagInvalidBlendOp:
		return "InvalidBlendOp"
	case DiagUnsupportedCapability:
		return "UnsupportedCapability"
	default:
		return "Unknown"
	}
}

// Diagnostic describes one reported condition. Diagnostics never carry an
// error: the operations that emit them substitute a safe value and continue.
type Diagnostic struct {
	// Kind classifies the condition.
	Kind DiagnosticKind

	// Value is the offending enumerant, as supplied.
	Value uint32

	// Alpha is set when the value came from an alpha-channel field of the
	// descriptor. Meaningful for DiagInvalidBlendFactor only.
	Alpha bool
}

// DiagnosticFunc receives diagnostics as they are emitted. Implementations
// must be safe for the call site they are installed at: a func installed
// via WithDiagnostics is called synchronously during construction and
// capability queries of that one object.
type DiagnosticFunc func(Diagnostic)

// logDiagnostic is the default sink: it forwards to the package logger at
// Warn level. Silent unless SetLogger installed a real logger.
func logDiagnostic(d Diagnostic) {
	msg := "dxstate: invalid enumerant"
	if d.Kind == DiagUnsupportedCapability {
		msg = "dxstate: unsupported capability query"
	}
	Logger().Warn(msg,
		slog.String("kind", d.Kind.String()),
		slog.Uint64("value", uint64(d.Value)),
		slog.Bool("alpha", d.Alpha))
}
