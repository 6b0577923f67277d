// Package kernel implements the butterfly, bit-reversal, and real-FFT
// building blocks used by the yfft planner and driver.
package kernel

import "math"

// Float is the scalar capability required by the kernel family: the set of
// floating-point types a transform can run over. Single precision is the
// optimized path (SIMD kernel variants are registered for float32 only);
// double precision runs entirely through the generic kernel family and
// must still produce correct results.
type Float interface {
	~float32 | ~float64
}

// Complex is a complex pair (real, imaginary) over a Float scalar. It is a
// plain struct rather than the builtin complex64/complex128 so that SIMD
// kernels can reinterpret a backing []F buffer as riri/rrii/rrrr-iiii
// layouts via unsafe slice conversion regardless of which F is in play.
type Complex[F Float] struct {
	Re, Im F
}

// Add returns a+b.
func (a Complex[F]) Add(b Complex[F]) Complex[F] {
	return Complex[F]{a.Re + b.Re, a.Im + b.Im}
}

// Sub returns a-b.
func (a Complex[F]) Sub(b Complex[F]) Complex[F] {
	return Complex[F]{a.Re - b.Re, a.Im - b.Im}
}

// Mul returns a*b.
func (a Complex[F]) Mul(b Complex[F]) Complex[F] {
	return Complex[F]{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// MulI returns a*i, i.e. a rotated by +90 degrees.
func (a Complex[F]) MulI() Complex[F] {
	return Complex[F]{-a.Im, a.Re}
}

// Conj returns the complex conjugate of a.
func (a Complex[F]) Conj() Complex[F] {
	return Complex[F]{a.Re, -a.Im}
}

// Scale returns a scaled by the real factor s.
func (a Complex[F]) Scale(s F) Complex[F] {
	return Complex[F]{a.Re * s, a.Im * s}
}

// Twiddle returns exp(-2*pi*i*k/n), or its conjugate when inverse is true
// (exp(+2*pi*i*k/n)). This is the root-of-unity factor applied between
// Cooley-Tukey stages (spec §3, "twiddle").
func Twiddle[F Float](k, n int, inverse bool) Complex[F] {
	angle := -2 * math.Pi * float64(k) / float64(n)
	if inverse {
		angle = -angle
	}
	s, c := math.Sincos(angle)
	return Complex[F]{F(c), F(s)}
}

// complexFromSlice reads a complex pair out of a riri-interleaved slice
// starting at element offset off (i.e. buf[off], buf[off+1]).
func complexFromSlice[F Float](buf []F, off int) Complex[F] {
	return Complex[F]{buf[off], buf[off+1]}
}

// storeComplex writes a complex pair into a riri-interleaved slice starting
// at element offset off.
func storeComplex[F Float](buf []F, off int, v Complex[F]) {
	buf[off] = v.Re
	buf[off+1] = v.Im
}
