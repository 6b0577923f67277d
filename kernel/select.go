package kernel

// New realizes spec §4.7 step 5 and the Design Note "Kernel dispatch": a
// closed, priority-ordered cascade — SIMD (float32 only) -> specialized
// generic (radix 2/4, any F) -> generic (any radix, any F) — evaluated
// until the first supporting entry.
func New[F Float](p CreationParams) Kernel[F] {
	if _, isF32 := any(*new(F)).(float32); isF32 {
		if simd, ok := newSIMDFloat32(p); ok {
			if k, ok2 := any(simd).(Kernel[F]); ok2 {
				return k
			}
		}
	}
	if k, ok := newSpecialized[F](p); ok {
		return k
	}
	return NewGeneric[F](p)
}

// newSpecialized returns the hand-unrolled radix-2/4 kernel when the
// stage's radix matches, else (nil, false) so the caller falls through to
// the fully generic kernel.
func newSpecialized[F Float](p CreationParams) (Kernel[F], bool) {
	switch p.Radix {
	case 2:
		return NewSpecializedRadix2[F](p), true
	case 4:
		return NewSpecializedRadix4[F](p), true
	default:
		return nil, false
	}
}
