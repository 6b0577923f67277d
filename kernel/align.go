package kernel

import "unsafe"

// isAligned reports whether buf's backing address satisfies the given
// power-of-two byte alignment. Each SIMD kernel calls this once per
// Transform call; the kernels have a single access path, so the result
// does not change how they load or store.
func isAligned[F Float](buf []F, byteAlign int) bool {
	if len(buf) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&buf[0]))%uintptr(byteAlign) == 0
}
