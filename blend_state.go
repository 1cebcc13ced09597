package dxstate

import "github.com/gogpu/dxstate/pipeline"

// BlendState is an immutable blend-state object: the verbatim descriptor it
// was created from, the eight decoded per-slot blend modes, and the static
// part of the multisample configuration.
//
// All decoding happens in NewBlendState; nothing is recomputed or mutated
// afterward, so a BlendState may be read and bound from any number of
// goroutines concurrently.
type BlendState struct {
	desc    BlendDesc
	modes   [pipeline.MaxRenderTargets]pipeline.BlendMode
	msState pipeline.MultisampleState
	device  pipeline.DeviceID
	report  DiagnosticFunc
}

// NewBlendState decodes desc into a BlendState. It never fails: invalid
// enumerants are reported through the diagnostic sink (see WithDiagnostics)
// and replaced with safe defaults.
//
// If independent blending is disabled, slot 0's configuration is decoded
// for every slot and slots 1-7 of the descriptor are never read. The
// backend requires identical modes across slots in that case, so the
// collapse happens here, once, rather than at every bind.
func NewBlendState(desc BlendDesc, opts ...Option) *BlendState {
	o := defaultStateOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &BlendState{
		desc:   desc,
		device: o.device,
		report: o.report,
	}

	for i := range s.modes {
		rt := desc.RenderTarget[0]
		if desc.IndependentBlendEnable {
			rt = desc.RenderTarget[i]
		}
		s.modes[i] = decodeBlendMode(rt, o.report)
	}

	// The multisample configuration is part of blend state in the source
	// API. The sample mask is dynamic and filled in at bind time.
	s.msState = pipeline.MultisampleState{
		SampleMask:       0,
		AlphaToCoverage:  desc.AlphaToCoverageEnable,
		AlphaToOne:       false,
		SampleShading:    false,
		MinSampleShading: 0,
	}
	return s
}

// Desc returns the descriptor the state was created from, unchanged. Slots
// that were never read during decoding are still returned verbatim.
func (s *BlendState) Desc() BlendDesc {
	return s.desc
}

// Mode returns the decoded blend mode for one render-target slot.
// Slot is in [0, pipeline.MaxRenderTargets).
func (s *BlendState) Mode(slot int) pipeline.BlendMode {
	return s.modes[slot]
}

// Device returns the non-owning back-reference to the device the state was
// created for, or pipeline.InvalidDeviceID if none was set.
func (s *BlendState) Device() pipeline.DeviceID {
	return s.device
}

// BindTo applies the decoded state to ctx. sampleMask is per-draw dynamic
// state; it is merged into the static multisample configuration and the
// result is published in a single SetMultisampleState call.
//
// BindTo cannot fail: every mode was validated and neutralized at
// construction time. The caller must hold exclusive access to ctx for the
// duration of the call.
func (s *BlendState) BindTo(ctx pipeline.Context, sampleMask uint32) {
	for i := range s.modes {
		ctx.SetBlendMode(i, s.modes[i])
	}

	msState := s.msState
	msState.SampleMask = sampleMask
	ctx.SetMultisampleState(msState)
}
