package pipeline

// MaxRenderTargets is the number of render-target slots a draw can write to.
// Blend state is tracked per slot.
const MaxRenderTargets = 8

// DeviceID is an opaque, non-owning handle to the device that created an
// object. It carries no lifecycle responsibility; it exists so device
// children can answer "who created you" without keeping the device alive.
type DeviceID uint64

// InvalidDeviceID is the zero value, representing "no device".
const InvalidDeviceID DeviceID = 0

// BlendFactor is a multiplier applied to the source or destination term
// during blending. The enumerant set distinguishes the color-constant and
// alpha-constant variants, matching Vulkan semantics.
type BlendFactor uint32

// Blend factors.
const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
	BlendFactorConstantColor
	BlendFactorOneMinusConstantColor
	BlendFactorConstantAlpha
	BlendFactorOneMinusConstantAlpha
	BlendFactorSrcAlphaSaturate
	BlendFactorSrc1Color
	BlendFactorOneMinusSrc1Color
	BlendFactorSrc1Alpha
	BlendFactorOneMinusSrc1Alpha
)

// String returns the blend factor name.
func (f BlendFactor) String() string {
	switch f {
	case BlendFactorZero:
		return "Zero"
	case BlendFactorOne:
		return "One"
	case BlendFactorSrcColor:
		return "SrcColor"
	case BlendFactorOneMinusSrcColor:
		return "OneMinusSrcColor"
	case BlendFactorDstColor:
		return "DstColor"
	case BlendFactorOneMinusDstColor:
		return "OneMinusDstColor"
	case BlendFactorSrcAlpha:
		return "SrcAlpha"
	case BlendFactorOneMinusSrcAlpha:
		return "OneMinusSrcAlpha"
	case BlendFactorDstAlpha:
		return "DstAlpha"
	case BlendFactorOneMinusDstAlpha:
		return "OneMinusDstAlpha"
	case BlendFactorConstantColor:
		return "ConstantColor"
	case BlendFactorOneMinusConstantColor:
		return "OneMinusConstantColor"
	case BlendFactorConstantAlpha:
		return "ConstantAlpha"
	case BlendFactorOneMinusConstantAlpha:
		return "OneMinusConstantAlpha"
	case BlendFactorSrcAlphaSaturate:
		return "SrcAlphaSaturate"
	case BlendFactorSrc1Color:
		return "Src1Color"
	case BlendFactorOneMinusSrc1Color:
		return "OneMinusSrc1Color"
	case BlendFactorSrc1Alpha:
		return "Src1Alpha"
	case BlendFactorOneMinusSrc1Alpha:
		return "OneMinusSrc1Alpha"
	default:
		return "Unknown"
	}
}

// BlendOp is the arithmetic combination applied between the weighted source
// and destination terms.
type BlendOp uint32

// Blend operations.
const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// String returns the blend operation name.
func (op BlendOp) String() string {
	switch op {
	case BlendOpAdd:
		return "Add"
	case BlendOpSubtract:
		return "Subtract"
	case BlendOpReverseSubtract:
		return "ReverseSubtract"
	case BlendOpMin:
		return "Min"
	case BlendOpMax:
		return "Max"
	default:
		return "Unknown"
	}
}

// ColorMask is a per-channel write mask for a render-target slot.
type ColorMask uint8

// Color mask bits.
const (
	ColorMaskRed   ColorMask = 1 << 0
	ColorMaskGreen ColorMask = 1 << 1
	ColorMaskBlue  ColorMask = 1 << 2
	ColorMaskAlpha ColorMask = 1 << 3

	ColorMaskNone ColorMask = 0
	ColorMaskAll            = ColorMaskRed | ColorMaskGreen | ColorMaskBlue | ColorMaskAlpha
)

// BlendMode is the fully resolved blend configuration for one render-target
// slot. Values of this type are plain data; they are produced once by a
// decoder and then applied to a Context unchanged.
type BlendMode struct {
	// Enable turns blending on for the slot. When false the source color
	// is written through, subject to WriteMask.
	Enable bool

	// ColorSrcFactor weights the source color term.
	ColorSrcFactor BlendFactor

	// ColorDstFactor weights the destination color term.
	ColorDstFactor BlendFactor

	// ColorOp combines the weighted color terms.
	ColorOp BlendOp

	// AlphaSrcFactor weights the source alpha term.
	AlphaSrcFactor BlendFactor

	// AlphaDstFactor weights the destination alpha term.
	AlphaDstFactor BlendFactor

	// AlphaOp combines the weighted alpha terms.
	AlphaOp BlendOp

	// WriteMask selects which channels the slot writes.
	WriteMask ColorMask
}

// MultisampleState is the multisample configuration applied to a Context.
// SampleMask is per-draw dynamic state; the remaining fields are fixed at
// pipeline-object creation.
type MultisampleState struct {
	// SampleMask selects which sample positions are written.
	SampleMask uint32

	// AlphaToCoverage derives per-sample coverage from output alpha.
	AlphaToCoverage bool

	// AlphaToOne forces output alpha to one after coverage is derived.
	AlphaToOne bool

	// SampleShading enables per-sample fragment shading.
	SampleShading bool

	// MinSampleShading is the minimum fraction of samples shaded
	// individually when SampleShading is set.
	MinSampleShading float32
}

// Context receives resolved pipeline state. Implementations are typically
// command recorders owned by a single goroutine; callers must not issue
// state-mutating calls to the same Context concurrently.
type Context interface {
	// SetBlendMode sets the blend configuration for one render-target slot.
	// Slot is in [0, MaxRenderTargets).
	SetBlendMode(slot int, mode BlendMode)

	// SetMultisampleState replaces the multisample configuration as a
	// single update. The context never observes a partially-applied state.
	SetMultisampleState(state MultisampleState)
}
