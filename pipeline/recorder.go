package pipeline

// Recorder is a Context that captures applied state instead of forwarding
// it to a GPU backend. It records the last blend mode seen per slot and the
// last multisample state, plus call counts.
//
// Recorder is not safe for concurrent use, matching the single-writer
// discipline expected of any Context.
type Recorder struct {
	// BlendModes holds the last blend mode applied to each slot.
	BlendModes [MaxRenderTargets]BlendMode

	// BlendSet marks slots that received at least one SetBlendMode call.
	BlendSet [MaxRenderTargets]bool

	// Multisample is the last multisample state applied.
	Multisample MultisampleState

	// MultisampleCalls counts SetMultisampleState calls.
	MultisampleCalls int

	// BlendCalls counts SetBlendMode calls.
	BlendCalls int
}

// SetBlendMode records the blend mode for a slot. Out-of-range slots are
// ignored; a real context would reject them the same way.
func (r *Recorder) SetBlendMode(slot int, mode BlendMode) {
	if slot < 0 || slot >= MaxRenderTargets {
		return
	}
	r.BlendModes[slot] = mode
	r.BlendSet[slot] = true
	r.BlendCalls++
}

// SetMultisampleState records the multisample state.
func (r *Recorder) SetMultisampleState(state MultisampleState) {
	r.Multisample = state
	r.MultisampleCalls++
}

// Reset clears all recorded state and counts.
func (r *Recorder) Reset() {
	*r = Recorder{}
}
