// Package pipeline defines the resolved pipeline-state vocabulary shared by
// state translators and rendering contexts.
//
// The types here are the *output* side of state translation: blend factors
// and operations with Vulkan-style semantics (including distinct color- and
// alpha-constant factors), per-slot blend modes, and the multisample
// configuration. The input side (API-specific descriptors) lives with the
// translators that consume it, e.g. the dxstate root package for
// D3D11-style descriptors.
//
// A Context is anything that accepts resolved state: a command recorder, a
// backend translation layer, or the Recorder in this package, which simply
// captures what was applied and is handy in tests.
package pipeline
