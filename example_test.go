package dxstate_test

import (
	"fmt"

	"github.com/gogpu/dxstate"
	"github.com/gogpu/dxstate/pipeline"
)

// Decode a standard alpha-blending descriptor and bind it with a full
// sample mask.
func ExampleNewBlendState() {
	desc := dxstate.DefaultBlendDesc()
	desc.RenderTarget[0].BlendEnable = true
	desc.RenderTarget[0].SrcBlend = dxstate.BlendSrcAlpha
	desc.RenderTarget[0].DestBlend = dxstate.BlendInvSrcAlpha

	state := dxstate.NewBlendState(desc)

	var rec pipeline.Recorder
	state.BindTo(&rec, 0xFFFFFFFF)

	mode := rec.BlendModes[0]
	fmt.Println(mode.ColorSrcFactor, mode.ColorDstFactor, mode.ColorOp)
	fmt.Printf("%#x\n", rec.Multisample.SampleMask)
	// Output:
	// SrcAlpha OneMinusSrcAlpha Add
	// 0xffffffff
}
