package dxstate

// Capability tags the roles an object can be queried for. The source API
// exposes objects through a chain of interfaces; here each object carries
// an explicit set of tags instead.
type Capability uint32

// Capability tags.
const (
	// CapabilityDeviceChild marks any object created by a device.
	CapabilityDeviceChild Capability = iota

	// CapabilityBlendState marks a blend-state object.
	CapabilityBlendState
)

// String returns the capability name.
func (c Capability) String() string {
	switch c {
	case CapabilityDeviceChild:
		return "DeviceChild"
	case CapabilityBlendState:
		return "BlendState"
	default:
		return "Unknown"
	}
}

// Supports reports whether the state exposes the given capability.
func (s *BlendState) Supports(c Capability) bool {
	switch c {
	case CapabilityDeviceChild, CapabilityBlendState:
		return true
	}
	return false
}

// Query returns the object itself for a supported capability tag. An
// unsupported tag reports a diagnostic and returns
// ErrUnsupportedCapability; it never panics or aborts.
func (s *BlendState) Query(c Capability) (any, error) {
	if s.Supports(c) {
		return s, nil
	}

	s.report(Diagnostic{Kind: DiagUnsupportedCapability, Value: uint32(c)})
	return nil, ErrUnsupportedCapability
}
