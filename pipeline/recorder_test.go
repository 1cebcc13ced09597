package pipeline

import "testing"

func TestRecorderCapturesBlendModes(t *testing.T) {
	var rec Recorder

	mode := BlendMode{
		Enable:         true,
		ColorSrcFactor: BlendFactorSrcAlpha,
		ColorDstFactor: BlendFactorOneMinusSrcAlpha,
		ColorOp:        BlendOpAdd,
		AlphaSrcFactor: BlendFactorOne,
		AlphaDstFactor: BlendFactorZero,
		AlphaOp:        BlendOpAdd,
		WriteMask:      ColorMaskAll,
	}
	rec.SetBlendMode(3, mode)

	if !rec.BlendSet[3] {
		t.Error("slot 3 should be marked set")
	}
	if rec.BlendModes[3] != mode {
		t.Errorf("slot 3 = %+v, want %+v", rec.BlendModes[3], mode)
	}
	if rec.BlendSet[0] || rec.BlendSet[7] {
		t.Error("untouched slots should not be marked set")
	}
	if rec.BlendCalls != 1 {
		t.Errorf("BlendCalls = %d, want 1", rec.BlendCalls)
	}
}

func TestRecorderIgnoresOutOfRangeSlots(t *testing.T) {
	var rec Recorder

	rec.SetBlendMode(-1, BlendMode{Enable: true})
	rec.SetBlendMode(MaxRenderTargets, BlendMode{Enable: true})

	if rec.BlendCalls != 0 {
		t.Errorf("BlendCalls = %d, want 0", rec.BlendCalls)
	}
	for i, set := range rec.BlendSet {
		if set {
			t.Errorf("slot %d unexpectedly set", i)
		}
	}
}

func TestRecorderCapturesMultisampleState(t *testing.T) {
	var rec Recorder

	state := MultisampleState{
		SampleMask:      0xF0F0F0F0,
		AlphaToCoverage: true,
	}
	rec.SetMultisampleState(state)

	if rec.Multisample != state {
		t.Errorf("Multisample = %+v, want %+v", rec.Multisample, state)
	}
	if rec.MultisampleCalls != 1 {
		t.Errorf("MultisampleCalls = %d, want 1", rec.MultisampleCalls)
	}
}

func TestRecorderReset(t *testing.T) {
	var rec Recorder
	rec.SetBlendMode(0, BlendMode{Enable: true})
	rec.SetMultisampleState(MultisampleState{SampleMask: 1})

	rec.Reset()

	if rec.BlendCalls != 0 || rec.MultisampleCalls != 0 {
		t.Error("Reset should clear call counts")
	}
	if rec.BlendSet[0] {
		t.Error("Reset should clear slot markers")
	}
	if rec.Multisample != (MultisampleState{}) {
		t.Error("Reset should clear multisample state")
	}
}
