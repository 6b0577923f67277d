//go:build !amd64 || purego

package kernel

// newSIMDFloat32 has no SIMD variants outside amd64 (spec's SSE/SSE3/AVX
// kernels are x86-specific); non-amd64 builds always fall through to the
// specialized/generic kernels. Matches gopus's own
// celt/kissfft32_opt_stub.go convention of a matching stub set for the
// non-optimized build.
func newSIMDFloat32(p CreationParams) (Kernel[float32], bool) {
	return nil, false
}
