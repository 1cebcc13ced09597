package dxstate

// Blend is a D3D11-style blend-factor enumerant, the input side of factor
// decoding. The numeric values match the source API, including the gaps at
// 12 and 13; values outside the defined set are invalid enumerants and
// decode to Zero.
type Blend uint32

// Blend factors, input side.
const (
	BlendZero           Blend = 1
	BlendOne            Blend = 2
	BlendSrcColor       Blend = 3
	BlendInvSrcColor    Blend = 4
	BlendSrcAlpha       Blend = 5
	BlendInvSrcAlpha    Blend = 6
	BlendDestAlpha      Blend = 7
	BlendInvDestAlpha   Blend = 8
	BlendDestColor      Blend = 9
	BlendInvDestColor   Blend = 10
	BlendSrcAlphaSat    Blend = 11
	BlendBlendFactor    Blend = 14
	BlendInvBlendFactor Blend = 15
	BlendSrc1Color      Blend = 16
	BlendInvSrc1Color   Blend = 17
	BlendSrc1Alpha      Blend = 18
	BlendInvSrc1Alpha   Blend = 19
)

// BlendOpDesc is a D3D11-style blend-operation enumerant, the input side of
// operation decoding. Values outside the defined set are invalid enumerants
// and decode to Add.
type BlendOpDesc uint32

// Blend operations, input side.
const (
	BlendOpDescAdd         BlendOpDesc = 1
	BlendOpDescSubtract    BlendOpDesc = 2
	BlendOpDescRevSubtract BlendOpDesc = 3
	BlendOpDescMin         BlendOpDesc = 4
	BlendOpDescMax         BlendOpDesc = 5
)

// Write mask bits for RenderTargetWriteMask.
const (
	WriteMaskRed   uint8 = 1 << 0
	WriteMaskGreen uint8 = 1 << 1
	WriteMaskBlue  uint8 = 1 << 2
	WriteMaskAlpha uint8 = 1 << 3

	WriteMaskAll = WriteMaskRed | WriteMaskGreen | WriteMaskBlue | WriteMaskAlpha
)

// RenderTargetBlendDesc configures blending for one render-target slot.
type RenderTargetBlendDesc struct {
	// BlendEnable turns blending on for the slot.
	BlendEnable bool

	// SrcBlend and DestBlend weight the color terms.
	SrcBlend  Blend
	DestBlend Blend

	// BlendOp combines the weighted color terms.
	BlendOp BlendOpDesc

	// SrcBlendAlpha and DestBlendAlpha weight the alpha terms.
	SrcBlendAlpha  Blend
	DestBlendAlpha Blend

	// BlendOpAlpha combines the weighted alpha terms.
	BlendOpAlpha BlendOpDesc

	// RenderTargetWriteMask selects the channels written, 4 bits.
	RenderTargetWriteMask uint8
}

// BlendDesc is the full blend-state descriptor: eight render-target slots
// plus the multisample flags the source API folds into blend state.
//
// BlendDesc is plain data; callers hand it to NewBlendState by value and
// the stored copy is returned verbatim by Desc, including slots 1-7 when
// IndependentBlendEnable is false and those slots were never decoded.
type BlendDesc struct {
	// AlphaToCoverageEnable derives sample coverage from output alpha.
	AlphaToCoverageEnable bool

	// IndependentBlendEnable allows each slot its own configuration.
	// When false, slot 0's configuration applies to all slots.
	IndependentBlendEnable bool

	// RenderTarget holds the per-slot configurations.
	RenderTarget [8]RenderTargetBlendDesc
}

// DefaultBlendDesc returns the source API's default blend state: blending
// disabled on every slot, source One, destination Zero, operation Add, all
// channels written.
func DefaultBlendDesc() BlendDesc {
	var desc BlendDesc
	for i := range desc.RenderTarget {
		desc.RenderTarget[i] = RenderTargetBlendDesc{
			SrcBlend:              BlendOne,
			DestBlend:             BlendZero,
			BlendOp:               BlendOpDescAdd,
			SrcBlendAlpha:         BlendOne,
			DestBlendAlpha:        BlendZero,
			BlendOpAlpha:          BlendOpDescAdd,
			RenderTargetWriteMask: WriteMaskAll,
		}
	}
	return desc
}

// validBlend reports whether f is a defined blend-factor enumerant.
func validBlend(f Blend) bool {
	return (f >= BlendZero && f <= BlendSrcAlphaSat) ||
		(f >= BlendBlendFactor && f <= BlendInvSrc1Alpha)
}

// validBlendOp reports whether op is a defined blend-operation enumerant.
func validBlendOp(op BlendOpDesc) bool {
	return op >= BlendOpDescAdd && op <= BlendOpDescMax
}

// Validate reports every invalid enumerant in the descriptor through fn,
// one Diagnostic per offending field, covering all eight slots regardless
// of IndependentBlendEnable. It never fails; decoding would substitute safe
// defaults for everything reported here. A nil fn reports through the
// package logger.
func (d *BlendDesc) Validate(fn DiagnosticFunc) {
	if fn == nil {
		fn = logDiagnostic
	}
	for i := range d.RenderTarget {
		rt := &d.RenderTarget[i]
		if !validBlend(rt.SrcBlend) {
			fn(Diagnostic{Kind: DiagInvalidBlendFactor, Value: uint32(rt.SrcBlend)})
		}
		if !validBlend(rt.DestBlend) {
			fn(Diagnostic{Kind: DiagInvalidBlendFactor, Value: uint32(rt.DestBlend)})
		}
		if !validBlendOp(rt.BlendOp) {
			fn(Diagnostic{Kind: DiagInvalidBlendOp, Value: uint32(rt.BlendOp)})
		}
		if !validBlend(rt.SrcBlendAlpha) {
			fn(Diagnostic{Kind: DiagInvalidBlendFactor, Value: uint32(rt.SrcBlendAlpha), Alpha: true})
		}
		if !validBlend(rt.DestBlendAlpha) {
			fn(Diagnostic{Kind: DiagInvalidBlendFactor, Value: uint32(rt.DestBlendAlpha), Alpha: true})
		}
		if !validBlendOp(rt.BlendOpAlpha) {
			fn(Diagnostic{Kind: DiagInvalidBlendOp, Value: uint32(rt.BlendOpAlpha)})
		}
	}
}
