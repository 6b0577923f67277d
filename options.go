package yfft

// DataOrder selects whether a transform's input or output is in Natural
// (conventional) order or Swizzled (implementation-defined, permutation-
// deferred) order (spec §6).
type DataOrder int

const (
	Natural DataOrder = iota
	Swizzled
)

// DataFormat selects whether a transform's input or output buffer holds
// real or complex samples (spec §6).
type DataFormat int

const (
	Complex DataFormat = iota
	Real
)

// Options configures a Setup (spec §6). It is the sole configuration
// surface the core exposes; constructing one is the caller's
// responsibility, with no file or environment parsing layer (that's out
// of scope per spec §1).
type Options struct {
	// Len is the transform length: the real-sample count for a real
	// transform, or the complex-element count for a complex transform.
	Len int

	// Inverse selects the inverse transform direction.
	Inverse bool

	InputDataOrder  DataOrder
	OutputDataOrder DataOrder

	InputDataFormat  DataFormat
	OutputDataFormat DataFormat
}
