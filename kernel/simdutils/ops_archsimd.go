//go:build goexperiment.simd

package simdutils

import (
	"simd/archsimd"
	"unsafe"
)

// This file mirrors madelynnblue/go-dsp's fft/radix2_simd.go: gated
// behind goexperiment.simd, it backs the same exported primitives as
// ops_generic.go with archsimd vector intrinsics instead of scalar Go.
// go-dsp's example operates on archsimd.Float64x2 (two float64 lanes);
// here the four float32 lanes of Vec4 map onto archsimd.Float32x4.

func loadVec4(v Vec4) archsimd.Float32x4 {
	return archsimd.LoadFloat32x4((*[4]float32)(unsafe.Pointer(&v)))
}

func storeVec4(v archsimd.Float32x4) Vec4 {
	var out Vec4
	v.Store((*[4]float32)(unsafe.Pointer(&out)))
	return out
}

// BitXor XORs the raw bit pattern of each lane of v with mask.
func BitXor(v Vec4, mask bitsMask) Vec4 {
	vi := archsimd.LoadUint32x4((*[4]uint32)(unsafe.Pointer(&v)))
	mi := archsimd.LoadUint32x4((*[4]uint32)(unsafe.Pointer(&mask)))
	r := vi.Xor(mi)
	var ob [4]uint32
	r.Store(&ob)
	return bitsToFloat32(ob)
}

// ComplexMulRRII computes the rrii-layout complex product via archsimd,
// following go-dsp's complexMulSIMD shape (broadcast + swap + AddSub).
// As in the fallback, negMask is XORed onto w before the product.
func ComplexMulRRII(v, w Vec4, negMask bitsMask) Vec4 {
	if negMask != (bitsMask{}) {
		w = BitXor(w, negMask)
	}
	out := ComplexMulRIRI(Vec4{v[0], v[2], v[1], v[3]}, Vec4{w[0], w[2], w[1], w[3]})
	return Vec4{out[0], out[2], out[1], out[3]}
}

// ComplexMulRIRI computes the riri-layout complex product using
// archsimd's AddSub (ADDSUBPS), exactly as go-dsp's complexMulSIMD does
// for the float64x2 case, generalized to two complex pairs at once.
func ComplexMulRIRI(v, w Vec4) Vec4 {
	vv := loadVec4(v)
	ac := vv.Mul(loadVec4(Vec4{w[0], w[0], w[2], w[2]}))
	swapped := vv.SelectFromPair(1, 0, 3, 2, vv)
	bd := swapped.Mul(loadVec4(Vec4{w[1], w[1], w[3], w[3]}))
	return storeVec4(ac.AddSub(bd))
}
