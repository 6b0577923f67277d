// Package simdutils implements the cross-lane primitives spec §4.2 asks
// for: bitxor sign flips and complex multiply in both rrii and riri
// layouts. Each primitive has a pure-Go fallback (ops_generic.go) and,
// gated behind the goexperiment.simd build tag, an archsimd-backed
// implementation (ops_archsimd.go) — matching the
// madelynnblue/go-dsp fft/radix2_simd.go convention of gating real SIMD
// intrinsics behind a build tag with an always-buildable fallback.
package simdutils

import "math"

// Vec4 holds four float32 lanes — a 128-bit SSE-width vector's worth. A
// complex pair in rrii layout occupies one Vec4 as [re0, re1, im0, im1];
// in riri layout as [re0, im0, re1, im1].
type Vec4 [4]float32

// bitsMask holds the raw bit patterns used by BitXor to negate specific
// lanes (sign-bit flip on IEEE754 float32, per spec §4.2 "bitxor").
type bitsMask = [4]uint32

func float32Bits(v Vec4) [4]uint32 {
	return [4]uint32{
		math.Float32bits(v[0]), math.Float32bits(v[1]),
		math.Float32bits(v[2]), math.Float32bits(v[3]),
	}
}

func bitsToFloat32(b [4]uint32) Vec4 {
	return Vec4{
		math.Float32frombits(b[0]), math.Float32frombits(b[1]),
		math.Float32frombits(b[2]), math.Float32frombits(b[3]),
	}
}
