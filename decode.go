package dxstate

import "github.com/gogpu/dxstate/pipeline"

// decodeBlendFactor maps an input blend factor to its resolved enumerant.
// The constant-factor pair resolves differently for color and alpha
// channels: the resolved vocabulary keeps those variants distinct, the
// input API does not. Unknown values are reported and decode to Zero.
func decodeBlendFactor(f Blend, isAlpha bool, report DiagnosticFunc) pipeline.BlendFactor {
	switch f {
	case BlendZero:
		return pipeline.BlendFactorZero
	case BlendOne:
		return pipeline.BlendFactorOne
	case BlendSrcColor:
		return pipeline.BlendFactorSrcColor
	case BlendInvSrcColor:
		return pipeline.BlendFactorOneMinusSrcColor
	case BlendSrcAlpha:
		return pipeline.BlendFactorSrcAlpha
	case BlendInvSrcAlpha:
		return pipeline.BlendFactorOneMinusSrcAlpha
	case BlendDestAlpha:
		return pipeline.BlendFactorDstAlpha
	case BlendInvDestAlpha:
		return pipeline.BlendFactorOneMinusDstAlpha
	case BlendDestColor:
		return pipeline.BlendFactorDstColor
	case BlendInvDestColor:
		return pipeline.BlendFactorOneMinusDstColor
	case BlendSrcAlphaSat:
		return pipeline.BlendFactorSrcAlphaSaturate
	case BlendBlendFactor:
		if isAlpha {
			return pipeline.BlendFactorConstantAlpha
		}
		return pipeline.BlendFactorConstantColor
	case BlendInvBlendFactor:
		if isAlpha {
			return pipeline.BlendFactorOneMinusConstantAlpha
		}
		return pipeline.BlendFactorOneMinusConstantColor
	case BlendSrc1Color:
		return pipeline.BlendFactorSrc1Color
	case BlendInvSrc1Color:
		return pipeline.BlendFactorOneMinusSrc1Color
	case BlendSrc1Alpha:
		return pipeline.BlendFactorSrc1Alpha
	case BlendInvSrc1Alpha:
		return pipeline.BlendFactorOneMinusSrc1Alpha
	}

	report(Diagnostic{Kind: DiagInvalidBlendFactor, Value: uint32(f), Alpha: isAlpha})
	return pipeline.BlendFactorZero
}

// decodeBlendOp maps an input blend operation to its resolved enumerant.
// Unknown values are reported and decode to Add.
func decodeBlendOp(op BlendOpDesc, report DiagnosticFunc) pipeline.BlendOp {
	switch op {
	case BlendOpDescAdd:
		return pipeline.BlendOpAdd
	case BlendOpDescSubtract:
		return pipeline.BlendOpSubtract
	case BlendOpDescRevSubtract:
		return pipeline.BlendOpReverseSubtract
	case BlendOpDescMin:
		return pipeline.BlendOpMin
	case BlendOpDescMax:
		return pipeline.BlendOpMax
	}

	report(Diagnostic{Kind: DiagInvalidBlendOp, Value: uint32(op)})
	return pipeline.BlendOpAdd
}

// decodeBlendMode resolves one slot's configuration. Total: any input
// produces a usable mode, with invalid enumerants reported and replaced.
// The write mask passes through unchanged whether or not blending is
// enabled; forcing it to zero for disabled slots is a known compatibility
// question left to the context.
func decodeBlendMode(rt RenderTargetBlendDesc, report DiagnosticFunc) pipeline.BlendMode {
	return pipeline.BlendMode{
		Enable:         rt.BlendEnable,
		ColorSrcFactor: decodeBlendFactor(rt.SrcBlend, false, report),
		ColorDstFactor: decodeBlendFactor(rt.DestBlend, false, report),
		ColorOp:        decodeBlendOp(rt.BlendOp, report),
		AlphaSrcFactor: decodeBlendFactor(rt.SrcBlendAlpha, true, report),
		AlphaDstFactor: decodeBlendFactor(rt.DestBlendAlpha, true, report),
		AlphaOp:        decodeBlendOp(rt.BlendOpAlpha, report),
		WriteMask:      pipeline.ColorMask(rt.RenderTargetWriteMask),
	}
}
