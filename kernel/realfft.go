package kernel

// RealFFTKernel converts between a real length-N transform and a complex
// length-N/2 transform using the packed-symmetry trick (spec §4.6). For a
// forward plan it is appended after the complex N/2 FFT (post-processing);
// for an inverse plan it is prepended before the complex N/2 inverse FFT
// (pre-processing).
type RealFFTKernel[F Float] struct {
	zeroWorkArea
	n       int
	inverse bool
	a, b    []Complex[F] // coefficient tables, indexed 0..n/2 (Transform reads only [1,n/2-1])
}

// NewRealFFT builds the real-FFT pre/post kernel for a real transform of
// length n. Precondition (spec §4.6): n even and >= 2. There is no SIMD
// real-FFT variant; this scalar kernel serves every real plan, whatever n.
func NewRealFFT[F Float](n int, inverse bool) *RealFFTKernel[F] {
	m := n / 2
	k := &RealFFTKernel[F]{n: n, inverse: inverse}
	k.a = make([]Complex[F], m+1)
	k.b = make([]Complex[F], m+1)
	for kk := 1; kk <= m; kk++ {
		w := Twiddle[F](kk, n, inverse)
		iw := w.MulI() // i*w
		if !inverse {
			k.a[kk] = Complex[F]{1, 0}.Sub(iw).Scale(0.5)
			k.b[kk] = Complex[F]{1, 0}.Add(iw).Scale(0.5)
		} else {
			k.a[kk] = Complex[F]{1, 0}.Add(iw).Scale(0.5)
			k.b[kk] = Complex[F]{1, 0}.Sub(iw).Scale(0.5)
		}
	}
	return k
}

func (k *RealFFTKernel[F]) Transform(p *Params[F]) {
	buf := p.Coefs
	m := k.n / 2

	x1, x2 := buf[0], buf[1]
	if !k.inverse {
		buf[0] = x1 + x2
		buf[1] = x1 - x2
	} else {
		buf[0] = (x1 + x2) * 0.5
		buf[1] = (x1 - x2) * 0.5
	}

	for kk := 1; kk <= m/2; kk++ {
		mk := m - kk
		if mk == kk {
			xk := complexFromSlice(buf, kk*2)
			g := k.a[kk].Mul(xk).Add(k.b[kk].Mul(xk.Conj()))
			storeComplex(buf, kk*2, g)
			continue
		}
		xk := complexFromSlice(buf, kk*2)
		xmk := complexFromSlice(buf, mk*2)
		gk := k.a[kk].Mul(xk).Add(k.b[kk].Mul(xmk.Conj()))
		gmk := k.a[mk].Mul(xmk).Add(k.b[mk].Mul(xk.Conj()))
		storeComplex(buf, kk*2, gk)
		storeComplex(buf, mk*2, gmk)
	}
}
