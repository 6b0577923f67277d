// Package yfft implements a small, power-of-two, single-precision 1D FFT
// engine intended for real-time audio processing that runs a fixed
// transform size many times per second.
//
// A Setup is built once from an Options record: transform length,
// direction, and the input/output data order and format. It factorizes
// the length into a sequence of butterfly kernels, an optional
// bit-reversal permutation, and optional real-FFT pre/post processing,
// selecting the fastest available kernel variant for each stage.
//
// An Env is created per transforming thread from a shared Setup; it owns
// the scratch work area a plan's kernels need and performs no further
// allocation. Calling Env.Transform runs the plan against a caller buffer
// in place.
//
// # Data Orders
//
// Transforms normally consume and produce data in Natural order. A plan
// that is Swizzled (permuted) at exactly one end skips the bit-reversal
// stage entirely; a plan that is Natural at both ends or Swizzled at both
// ends runs one bit-reversal pass. A Swizzled-output forward plan and a
// Swizzled-input inverse plan of the same length compose back to Natural
// order without either side explicitly bit-reversing.
//
// # Scaling
//
// Forward and inverse transforms are both unnormalized: a forward
// transform followed by its inverse scales the original buffer by the
// transform length, which the caller divides out. For a complex-format
// plan that length is Options.Len. For a real-format plan it is Len/2:
// the real-FFT pre/post kernel is itself an exact linear inverse of its
// counterpart and contributes no scale of its own, so the round trip's
// only scale factor comes from the underlying Len/2-point complex FFT.
package yfft
