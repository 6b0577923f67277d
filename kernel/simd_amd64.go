//go:build amd64 && !purego

package kernel

import (
	"golang.org/x/sys/cpu"
)

// simdLevel is the instruction-set tier selected once at process start,
// mirroring gopus's celt/kissfft32_opt_amd64.go init() cascade
// (HasAVX2 -> HasAVX -> SSE2 baseline). It resolves the *instruction-set*
// granularity of spec §4.4's selection cascade; the *kernel-variant*
// granularity (which radix/unit predicate wins) is resolved by
// newSIMDFloat32 below.
type simdLevel int

const (
	levelSSE2 simdLevel = iota
	levelSSE3
	levelAVX
	levelAVX2
)

var detectedLevel = func() simdLevel {
	switch {
	case cpu.X86.HasAVX2:
		return levelAVX2
	case cpu.X86.HasAVX:
		return levelAVX
	case cpu.X86.HasSSE3:
		return levelSSE3
	default:
		return levelSSE2
	}
}()

// newSIMDFloat32 implements spec §4.4's selection cascade for float32
// transforms: AVX radix-4 -> AVX radix-2 -> SSE3 radix-4 -> SSE2 generic
// -> SSE radix-2 -> SSE radix-4, tie-broken by preferring the variant with
// the highest unit-divisibility requirement it can satisfy. Returns
// (nil, false) when no variant's predicate matches, letting the caller
// fall through to the specialized/generic kernels.
func newSIMDFloat32(p CreationParams) (Kernel[float32], bool) {
	for _, v := range simdVariantCascade {
		if v.supports(p) {
			return v.construct(p), true
		}
	}
	return nil, false
}

type simdVariant struct {
	supports func(CreationParams) bool
	construct func(CreationParams) Kernel[float32]
}

// simdVariantCascade is the closed, priority-ordered enumeration described
// in the Design Note "Kernel dispatch". Each entry's predicate checks the
// instruction-set tier detected from the running CPU when the package
// initializes (detectedLevel; the tier is not fixed at compile time), the
// radix match, and divisibility of unit by the variant's chunk width.
var simdVariantCascade = []simdVariant{
	{ // AVX radix-4: chunks unit 4 at a time; twiddles are rrii-packed and
		// applied 2 lanes per vector op (no rrrr-iiii layout).
		supports: func(p CreationParams) bool {
			return detectedLevel >= levelAVX && p.Radix == 4 && p.Unit%4 == 0
		},
		construct: func(p CreationParams) Kernel[float32] { return newSIMDRadix4(p, 32, 4) },
	},
	{ // AVX radix-2: processes 4 sub-FFTs per inner iteration.
		supports: func(p CreationParams) bool {
			return detectedLevel >= levelAVX && p.Radix == 2 && p.Unit%4 == 0
		},
		construct: func(p CreationParams) Kernel[float32] { return newSIMDRadix2(p, 32, 4) },
	},
	{ // SSE3 radix-4: processes 2 sub-FFTs per inner iteration (rrii),
		// needs horizontal add/sub (available from SSE3 onward).
		supports: func(p CreationParams) bool {
			return detectedLevel >= levelSSE3 && p.Radix == 4 && p.Unit%2 == 0
		},
		construct: func(p CreationParams) Kernel[float32] { return newSIMDRadix4(p, 16, 2) },
	},
	{ // SSE2 generic: any radix other than 2 or 4; delegates to the scalar
		// genericKernel (no vector path).
		supports: func(p CreationParams) bool {
			return detectedLevel >= levelSSE2 && p.Unit%2 == 0 && p.Radix != 2 && p.Radix != 4
		},
		construct: func(p CreationParams) Kernel[float32] { return newSIMDGeneric(p, 16, 2) },
	},
	{ // SSE radix-2, 2-wide.
		supports: func(p CreationParams) bool {
			return detectedLevel >= levelSSE2 && p.Radix == 2 && p.Unit%2 == 0
		},
		construct: func(p CreationParams) Kernel[float32] { return newSIMDRadix2(p, 16, 2) },
	},
	{ // SSE radix-4, 2-wide.
		supports: func(p CreationParams) bool {
			return detectedLevel >= levelSSE2 && p.Radix == 4 && p.Unit%2 == 0
		},
		construct: func(p CreationParams) Kernel[float32] { return newSIMDRadix4(p, 16, 2) },
	},
}
