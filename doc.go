// Package dxstate translates D3D11-style fixed-function state objects into
// the resolved pipeline-state vocabulary of the GoGPU ecosystem.
//
// # Overview
//
// dxstate models the descriptor-to-pipeline-state contract of D3D11 state
// objects: a caller supplies an immutable descriptor, the library decodes it
// once into backend-ready state, and the resulting object can be bound into
// any number of rendering contexts for the rest of its life.
//
// v0.1 covers blend state: an 8-slot render-target blend descriptor plus the
// multisample flags D3D11 folds into it. Decoded state uses Vulkan-style
// enumerants (package pipeline), which keep the color-constant and
// alpha-constant blend factors distinct.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/dxstate"
//	    "github.com/gogpu/dxstate/pipeline"
//	)
//
//	desc := dxstate.DefaultBlendDesc()
//	desc.RenderTarget[0].BlendEnable = true
//	desc.RenderTarget[0].SrcBlend = dxstate.BlendSrcAlpha
//	desc.RenderTarget[0].DestBlend = dxstate.BlendInvSrcAlpha
//
//	state := dxstate.NewBlendState(desc)
//
//	var rec pipeline.Recorder
//	state.BindTo(&rec, 0xFFFFFFFF)
//
// # Decoding Rules
//
// Construction never fails. Descriptors with out-of-range enumerants decode
// to safe defaults (factor Zero, operation Add); each substitution is
// reported through the diagnostic channel (see WithDiagnostics and
// SetLogger). When independent blending is disabled, slot 0's configuration
// is decoded once and replicated across all eight slots; slots 1-7 of the
// descriptor are preserved verbatim but never read.
//
// # Concurrency
//
// A BlendState is immutable after NewBlendState returns, so any number of
// goroutines may read it or bind it concurrently. The Context passed to
// BindTo is mutated; one context must be driven by one goroutine at a time.
package dxstate
