// Package webgpu lowers resolved pipeline state to the WebGPU-style types
// of github.com/gogpu/gputypes, for backends built on the GoGPU stack.
//
// WebGPU's blend vocabulary is narrower than the resolved one: it has a
// single constant blend factor shared by the color and alpha channels, and
// no dual-source factors. Lowering collapses the constant split (legal,
// because WebGPU applies the blend constant per channel anyway) and rejects
// dual-source factors with ErrUnsupportedFactor.
package webgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/dxstate/pipeline"
)

// Package errors for webgpu lowering.
var (
	// ErrUnsupportedFactor is returned for blend factors WebGPU cannot
	// express (the dual-source Src1 family).
	ErrUnsupportedFactor = errors.New("webgpu: blend factor not representable")

	// ErrUnsupportedMultisample is returned for multisample features
	// WebGPU cannot express (alpha-to-one, sample shading).
	ErrUnsupportedMultisample = errors.New("webgpu: multisample feature not representable")
)

// BlendState lowers a blend mode to a gputypes.BlendState. A disabled mode
// lowers to nil, which WebGPU treats as replace.
func BlendState(mode pipeline.BlendMode) (*gputypes.BlendState, error) {
	if !mode.Enable {
		return nil, nil
	}

	colorSrc, err := Factor(mode.ColorSrcFactor)
	if err != nil {
		return nil, fmt.Errorf("color src: %w", err)
	}
	colorDst, err := Factor(mode.ColorDstFactor)
	if err != nil {
		return nil, fmt.Errorf("color dst: %w", err)
	}
	alphaSrc, err := Factor(mode.AlphaSrcFactor)
	if err != nil {
		return nil, fmt.Errorf("alpha src: %w", err)
	}
	alphaDst, err := Factor(mode.AlphaDstFactor)
	if err != nil {
		return nil, fmt.Errorf("alpha dst: %w", err)
	}

	return &gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: colorSrc,
			DstFactor: colorDst,
			Operation: Operation(mode.ColorOp),
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: alphaSrc,
			DstFactor: alphaDst,
			Operation: Operation(mode.AlphaOp),
		},
	}, nil
}

// ColorTarget lowers a blend mode to a full color-target state for the
// given texture format.
func ColorTarget(mode pipeline.BlendMode, format gputypes.TextureFormat) (gputypes.ColorTargetState, error) {
	blend, err := BlendState(mode)
	if err != nil {
		return gputypes.ColorTargetState{}, err
	}
	return gputypes.ColorTargetState{
		Format:    format,
		Blend:     blend,
		WriteMask: WriteMask(mode.WriteMask),
	}, nil
}

// Multisample lowers a multisample state for a pipeline with the given
// sample count. Alpha-to-one and sample shading have no WebGPU equivalent
// and are rejected rather than dropped silently.
func Multisample(state pipeline.MultisampleState, sampleCount uint32) (gputypes.MultisampleState, error) {
	if state.AlphaToOne || state.SampleShading {
		return gputypes.MultisampleState{}, ErrUnsupportedMultisample
	}
	return gputypes.MultisampleState{
		Count:                  sampleCount,
		Mask:                   uint64(state.SampleMask),
		AlphaToCoverageEnabled: state.AlphaToCoverage,
	}, nil
}

// Factor lowers a blend factor. The color- and alpha-constant variants both
// lower to the single WebGPU constant factor.
func Factor(f pipeline.BlendFactor) (gputypes.BlendFactor, error) {
	switch f {
	case pipeline.BlendFactorZero:
		return gputypes.BlendFactorZero, nil
	case pipeline.BlendFactorOne:
		return gputypes.BlendFactorOne, nil
	case pipeline.BlendFactorSrcColor:
		return gputypes.BlendFactorSrc, nil
	case pipeline.BlendFactorOneMinusSrcColor:
		return gputypes.BlendFactorOneMinusSrc, nil
	case pipeline.BlendFactorDstColor:
		return gputypes.BlendFactorDst, nil
	case pipeline.BlendFactorOneMinusDstColor:
		return gputypes.BlendFactorOneMinusDst, nil
	case pipeline.BlendFactorSrcAlpha:
		return gputypes.BlendFactorSrcAlpha, nil
	case pipeline.BlendFactorOneMinusSrcAlpha:
		return gputypes.BlendFactorOneMinusSrcAlpha, nil
	case pipeline.BlendFactorDstAlpha:
		return gputypes.BlendFactorDstAlpha, nil
	case pipeline.BlendFactorOneMinusDstAlpha:
		return gputypes.BlendFactorOneMinusDstAlpha, nil
	case pipeline.BlendFactorConstantColor, pipeline.BlendFactorConstantAlpha:
		return gputypes.BlendFactorConstant, nil
	case pipeline.BlendFactorOneMinusConstantColor, pipeline.BlendFactorOneMinusConstantAlpha:
		return gputypes.BlendFactorOneMinusConstant, nil
	case pipeline.BlendFactorSrcAlphaSaturate:
		return gputypes.BlendFactorSrcAlphaSaturated, nil
	}
	return gputypes.BlendFactorZero, fmt.Errorf("%w: %s", ErrUnsupportedFactor, f)
}

// Operation lowers a blend operation. The mapping is total.
func Operation(op pipeline.BlendOp) gputypes.BlendOperation {
	switch op {
	case pipeline.BlendOpSubtract:
		return gputypes.BlendOperationSubtract
	case pipeline.BlendOpReverseSubtract:
		return gputypes.BlendOperationReverseSubtract
	case pipeline.BlendOpMin:
		return gputypes.BlendOperationMin
	case pipeline.BlendOpMax:
		return gputypes.BlendOperationMax
	default:
		return gputypes.BlendOperationAdd
	}
}

// WriteMask lowers a color mask bit-for-bit; both sides use the
// red/green/blue/alpha bit layout.
func WriteMask(m pipeline.ColorMask) gputypes.ColorWriteMask {
	var out gputypes.ColorWriteMask
	if m&pipeline.ColorMaskRed != 0 {
		out |= gputypes.ColorWriteMaskRed
	}
	if m&pipeline.ColorMaskGreen != 0 {
		out |= gputypes.ColorWriteMaskGreen
	}
	if m&pipeline.ColorMaskBlue != 0 {
		out |= gputypes.ColorWriteMaskBlue
	}
	if m&pipeline.ColorMaskAlpha != 0 {
		out |= gputypes.ColorWriteMaskAlpha
	}
	return out
}
