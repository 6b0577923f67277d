//go:build !goexperiment.simd

package simdutils

// BitXor XORs the raw bit pattern of each lane of v with mask, used to
// conditionally negate specific lanes (spec §4.2 "bitxor"). Called by
// ComplexMulRRII to fold in its negMask.
func BitXor(v Vec4, mask bitsMask) Vec4 {
	vb := float32Bits(v)
	var ob [4]uint32
	for i := range vb {
		ob[i] = vb[i] ^ mask[i]
	}
	return bitsToFloat32(ob)
}

// ComplexMulRRII computes the complex product of two complex pairs packed
// two-reals-then-two-imaginaries per vector (rrii layout): v=[vr0,vr1,
// vi0,vi1], w likewise. negMask selects the sign of the cross term: it is
// XORed onto w before the product, so a mask with the sign bit set in w's
// imaginary lanes (2 and 3) yields v*conj(w), letting the same primitive
// serve both complex multiply and multiply-by-conjugate (spec §4.2
// "complex_mul_rrii").
func ComplexMulRRII(v, w Vec4, negMask bitsMask) Vec4 {
	if negMask != (bitsMask{}) {
		w = BitXor(w, negMask)
	}
	r0 := v[0]*w[0] - v[2]*w[2]
	r1 := v[1]*w[1] - v[3]*w[3]
	i0 := v[0]*w[2] + v[2]*w[0]
	i1 := v[1]*w[3] + v[3]*w[1]
	return Vec4{r0, r1, i0, i1}
}

// ComplexMulRIRI computes the complex product of two complex pairs packed
// interleaved (riri layout): v=[vr0,vi0,vr1,vi1], w likewise. Requires a
// horizontal add/sub, which SSE3 exposes directly (addsubps); this
// fallback computes each product with plain scalar arithmetic (spec §4.2
// "complex_mul_riri": "requires horizontal add/sub; emulate if absent").
func ComplexMulRIRI(v, w Vec4) Vec4 {
	var out Vec4
	for i := 0; i < 4; i += 2 {
		ar, ai := v[i], v[i+1]
		br, bi := w[i], w[i+1]
		out[i] = ar*br - ai*bi
		out[i+1] = ar*bi + ai*br
	}
	return out
}
