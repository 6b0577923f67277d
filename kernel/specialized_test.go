package kernel

import "testing"

// TestSpecializedRadix2MatchesDirect checks the unrolled radix-2 butterfly
// (Unit==1, no twiddle) against a direct 2-point DFT, forward and inverse.
func TestSpecializedRadix2MatchesDirect(t *testing.T) {
	for _, inverse := range []bool{false, true} {
		x := []complex128{complex(3, -1), complex(-2, 4)}
		buf := toRiri32(x)

		cp := CreationParams{Size: 2, Type: DIT, Radix: 2, Unit: 1, Inverse: inverse}
		k := NewSpecializedRadix2[float32](cp)
		k.Transform(&Params[float32]{Coefs: buf})

		got := fromRiri32(buf)
		want := refDFT(x, inverse)
		if diff := maxComplexDiff(got, want); diff > 1e-4 {
			t.Errorf("inverse=%v: max diff %.2e, want <= 1e-4 (got %v want %v)", inverse, diff, got, want)
		}
	}
}

// TestSpecializedRadix4MatchesDirect checks the unrolled radix-4 butterfly
// (Unit==1, no twiddle, the ±i cross rotation) against a direct 4-point
// DFT, forward and inverse.
func TestSpecializedRadix4MatchesDirect(t *testing.T) {
	for _, inverse := range []bool{false, true} {
		x := []complex128{complex(1, 0), complex(2, -1), complex(-1, 3), complex(0, 2)}
		buf := toRiri32(x)

		cp := CreationParams{Size: 4, Type: DIT, Radix: 4, Unit: 1, Inverse: inverse}
		k := NewSpecializedRadix4[float32](cp)
		k.Transform(&Params[float32]{Coefs: buf})

		got := fromRiri32(buf)
		want := refDFT(x, inverse)
		if diff := maxComplexDiff(got, want); diff > 1e-4 {
			t.Errorf("inverse=%v: max diff %.2e, want <= 1e-4 (got %v want %v)", inverse, diff, got, want)
		}
	}
}

// TestSpecializedRadix4WithTwiddle runs the radix-4 kernel as the first
// stage of an 8-point DIT decomposition (Unit==1, so still twiddle-free)
// followed by a radix-2 Unit==4 stage (twiddled), cross checked against
// genericKernel performing the identical two stages, to confirm the
// specialized and generic kernels agree bit-for-bit in shape (spec §4.3:
// specialized is an optimization, not a semantic change). Neither side
// permutes its input, so this does not itself need to equal a direct DFT
// of x — that composition (plus the digit-reversal DIT needs on input) is
// checked by TestGenericTwoStageComposition.
func TestSpecializedRadix4WithTwiddle(t *testing.T) {
	const n = 8
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(float64(i)-3.5, float64(i%3)-1)
	}

	cp1 := CreationParams{Size: n, Type: DIT, Radix: 4, Unit: 1, Inverse: false}
	cp2 := CreationParams{Size: n, Type: DIT, Radix: 2, Unit: 4, Inverse: false}

	bufSpecialized := toRiri32(x)
	ks1 := NewSpecializedRadix4[float32](cp1)
	ks2 := NewSpecializedRadix2[float32](cp2)
	ks1.Transform(&Params[float32]{Coefs: bufSpecialized})
	ks2.Transform(&Params[float32]{Coefs: bufSpecialized})

	bufGeneric := toRiri32(x)
	kg1 := NewGeneric[float32](cp1)
	kg2 := NewGeneric[float32](cp2)
	wa := make([]float32, 32)
	kg1.Transform(&Params[float32]{Coefs: bufGeneric, WorkArea: wa})
	kg2.Transform(&Params[float32]{Coefs: bufGeneric, WorkArea: wa})

	got := fromRiri32(bufSpecialized)
	want := fromRiri32(bufGeneric)
	if diff := maxComplexDiff(got, want); diff > 1e-4 {
		t.Errorf("specialized vs generic: max diff %.2e, want <= 1e-4", diff)
	}
}
