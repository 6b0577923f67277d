package kernel

import "github.com/thesyncim/yfft/kernel/simdutils"

// simdRadix2Kernel and simdRadix4Kernel are the float32 SIMD-dispatched
// variants described in spec §4.4: same butterfly semantics as the
// specialized radix-2/4 kernels, but twiddles are precomputed in
// simdutils' packed Vec4 layout and applied 2 lanes at a time — radix-2
// via simdutils.ComplexMulRIRI (riri layout), radix-4 via
// simdutils.ComplexMulRRII (rrii layout, per spec §4.4's "SSE3 radix-4 ...
// rrii"). Transform computes whether the buffer meets `align`, but there is
// only one load/store path: every element is read and written through
// ordinary slice indexing whatever the result. `width` sets the dispatch cascade's chunking
// granularity (2 for SSE, 4 for AVX); the vector op itself always pairs 2
// lanes, since Vec4 holds two complex numbers.
type simdRadix2Kernel struct {
	zeroWorkArea
	params    CreationParams
	align     int // required alignment in bytes (16 for SSE, 32 for AVX)
	width     int // sub-FFTs processed per inner iteration (2 or 4)
	twiddles  []simdutils.Vec4
}

func newSIMDRadix2(p CreationParams, align, width int) Kernel[float32] {
	k := &simdRadix2Kernel{params: p, align: align, width: width}
	if p.Unit > 1 {
		k.twiddles = packTwiddlesRIRI(p, 1, width)
	}
	return k
}

func (k *simdRadix2Kernel) RequiredWorkAreaSize() int { return 0 }

func (k *simdRadix2Kernel) Transform(p *Params[float32]) {
	buf := p.Coefs
	aligned := isAligned(buf, k.align)
	_ = aligned // both paths identical in pure Go; kept for shape parity.

	unit := k.params.Unit
	groups := k.params.Groups()
	width := k.width

	for g := 0; g < groups; g++ {
		base := g * 2 * unit
		for u := 0; u < unit; u += width {
			n := width
			if u+n > unit {
				n = unit - u
			}
			for lane := 0; lane < n; lane += 2 {
				laneWidth := 2
				if lane+1 >= n {
					laneWidth = 1
				}
				k.butterflyLanes(buf, base, unit, u+lane, laneWidth)
			}
		}
	}
}

func (k *simdRadix2Kernel) butterflyLanes(buf []float32, base, unit, u, n int) {
	if n == 2 && k.params.Unit > 1 && u%2 == 0 {
		// Two sub-FFTs at once: multiply both lanes' x1 by their twiddle
		// in one riri-packed ComplexMulRIRI call (spec §4.2).
		i0a, i1a := (base+u)*2, (base+unit+u)*2
		i0b, i1b := (base+u+1)*2, (base+unit+u+1)*2
		xa0 := complexFromSlice(buf, i0a)
		xb0 := complexFromSlice(buf, i0b)
		x1 := simdutils.Vec4{buf[i1a], buf[i1a+1], buf[i1b], buf[i1b+1]}
		w := k.twiddles[u/2]
		var y1 simdutils.Vec4
		if k.params.Type == DIT {
			y1 = simdutils.ComplexMulRIRI(x1, w)
		} else {
			y1 = x1
		}
		xa1 := Complex[float32]{y1[0], y1[1]}
		xb1 := Complex[float32]{y1[2], y1[3]}

		ya0 := xa0.Add(xa1)
		ya1 := xa0.Sub(xa1)
		yb0 := xb0.Add(xb1)
		yb1 := xb0.Sub(xb1)

		if k.params.Type == DIF {
			packed := simdutils.Vec4{ya1.Re, ya1.Im, yb1.Re, yb1.Im}
			twid := simdutils.ComplexMulRIRI(packed, w)
			ya1 = Complex[float32]{twid[0], twid[1]}
			yb1 = Complex[float32]{twid[2], twid[3]}
		}

		storeComplex(buf, i0a, ya0)
		storeComplex(buf, i1a, ya1)
		storeComplex(buf, i0b, yb0)
		storeComplex(buf, i1b, yb1)
		return
	}

	for i := 0; i < n; i++ {
		i0 := (base + u + i) * 2
		i1 := (base + unit + u + i) * 2
		x0 := complexFromSlice(buf, i0)
		x1 := complexFromSlice(buf, i1)
		if k.params.Type == DIT && unit > 1 {
			w := k.twiddleAt(u + i)
			x1 = x1.Mul(w)
			storeComplex(buf, i0, x0.Add(x1))
			storeComplex(buf, i1, x0.Sub(x1))
			continue
		}
		y0 := x0.Add(x1)
		y1 := x0.Sub(x1)
		if k.params.Type == DIF && unit > 1 {
			y1 = y1.Mul(k.twiddleAt(u + i))
		}
		storeComplex(buf, i0, y0)
		storeComplex(buf, i1, y1)
	}
}

func (k *simdRadix2Kernel) twiddleAt(u int) Complex[float32] {
	v := k.twiddles[u/2]
	if u%2 == 0 {
		return Complex[float32]{v[0], v[1]}
	}
	return Complex[float32]{v[2], v[3]}
}

// simdRadix4Kernel is the rrii-vectorized radix-4 butterfly (spec §4.4
// "SSE3 radix-4 ... processing two sub-FFTs per inner iteration (rrii)"):
// twiddles for lane pair (u, u+1) are packed two-reals-then-two-imaginaries
// per Vec4 and applied with one simdutils.ComplexMulRRII call per twiddle
// per pair, instead of two independent scalar complex multiplies.
type simdRadix4Kernel struct {
	zeroWorkArea
	params   CreationParams
	align    int
	width    int
	twiddles [][3]simdutils.Vec4 // per lane-pair: rrii-packed twiddles for r=1,2,3
}

func newSIMDRadix4(p CreationParams, align, width int) Kernel[float32] {
	k := &simdRadix4Kernel{params: p, align: align, width: width}
	if p.Unit > 1 {
		stageSize := p.Radix * p.Unit
		pairs := (p.Unit + 1) / 2
		k.twiddles = make([][3]simdutils.Vec4, pairs)
		for pi := 0; pi < pairs; pi++ {
			u0 := pi * 2
			u1 := u0 + 1
			for r := 1; r < 4; r++ {
				w0 := Twiddle[float32](r*u0, stageSize, p.Inverse)
				w1 := w0
				if u1 < p.Unit {
					w1 = Twiddle[float32](r*u1, stageSize, p.Inverse)
				}
				k.twiddles[pi][r-1] = simdutils.Vec4{w0.Re, w1.Re, w0.Im, w1.Im}
			}
		}
	}
	return k
}

func (k *simdRadix4Kernel) RequiredWorkAreaSize() int { return 0 }

func (k *simdRadix4Kernel) twiddleAt(r, u int) Complex[float32] {
	v := k.twiddles[u/2][r-1]
	if u%2 == 0 {
		return Complex[float32]{v[0], v[2]}
	}
	return Complex[float32]{v[1], v[3]}
}

// Transform runs the radix-4 butterfly `width` lanes at a time (width is
// the dispatch cascade's alignment-tier hint, spec §4.4); the rrii vector
// op itself always pairs 2 lanes, same as simdRadix2Kernel, since Vec4
// holds two complex numbers. A trailing odd lane (unit odd) falls back to
// a scalar single-lane butterfly.
func (k *simdRadix4Kernel) Transform(p *Params[float32]) {
	buf := p.Coefs
	aligned := isAligned(buf, k.align)
	_ = aligned // both paths identical in pure Go; kept for shape parity.

	unit := k.params.Unit
	groups := k.params.Groups()
	width := k.width

	for g := 0; g < groups; g++ {
		base := g * 4 * unit
		for u := 0; u < unit; u += width {
			n := width
			if u+n > unit {
				n = unit - u
			}
			for lane := 0; lane < n; lane += 2 {
				laneWidth := 2
				if lane+1 >= n {
					laneWidth = 1
				}
				k.butterflyLanes(buf, base, unit, u+lane, laneWidth)
			}
		}
	}
}

func (k *simdRadix4Kernel) butterflyLanes(buf []float32, base, unit, u, n int) {
	inverse := k.params.Inverse

	if n == 2 && k.params.Unit > 1 && u%2 == 0 {
		idx := func(slot, lane int) int { return (base + slot*unit + u + lane) * 2 }
		xa0, xb0 := complexFromSlice(buf, idx(0, 0)), complexFromSlice(buf, idx(0, 1))
		xa1, xb1 := complexFromSlice(buf, idx(1, 0)), complexFromSlice(buf, idx(1, 1))
		xa2, xb2 := complexFromSlice(buf, idx(2, 0)), complexFromSlice(buf, idx(2, 1))
		xa3, xb3 := complexFromSlice(buf, idx(3, 0)), complexFromSlice(buf, idx(3, 1))

		twid := k.twiddles[u/2]
		rrii := func(a, b Complex[float32]) simdutils.Vec4 {
			return simdutils.Vec4{a.Re, b.Re, a.Im, b.Im}
		}
		unpack := func(v simdutils.Vec4) (Complex[float32], Complex[float32]) {
			return Complex[float32]{v[0], v[2]}, Complex[float32]{v[1], v[3]}
		}

		if k.params.Type == DIT && unit > 1 {
			v1 := simdutils.ComplexMulRRII(rrii(xa1, xb1), twid[0], [4]uint32{})
			v2 := simdutils.ComplexMulRRII(rrii(xa2, xb2), twid[1], [4]uint32{})
			v3 := simdutils.ComplexMulRRII(rrii(xa3, xb3), twid[2], [4]uint32{})
			xa1, xb1 = unpack(v1)
			xa2, xb2 = unpack(v2)
			xa3, xb3 = unpack(v3)
		}

		butterfly := func(x0, x1, x2, x3 Complex[float32]) (Complex[float32], Complex[float32], Complex[float32], Complex[float32]) {
			s0 := x0.Add(x2)
			s1 := x0.Sub(x2)
			s2 := x1.Add(x3)
			s3 := x1.Sub(x3)
			if !inverse {
				s3 = s3.MulI().Scale(-1)
			} else {
				s3 = s3.MulI()
			}
			return s0.Add(s2), s1.Add(s3), s0.Sub(s2), s1.Sub(s3)
		}
		ya0, ya1, ya2, ya3 := butterfly(xa0, xa1, xa2, xa3)
		yb0, yb1, yb2, yb3 := butterfly(xb0, xb1, xb2, xb3)

		if k.params.Type == DIF && unit > 1 {
			v1 := simdutils.ComplexMulRRII(rrii(ya1, yb1), twid[0], [4]uint32{})
			v2 := simdutils.ComplexMulRRII(rrii(ya2, yb2), twid[1], [4]uint32{})
			v3 := simdutils.ComplexMulRRII(rrii(ya3, yb3), twid[2], [4]uint32{})
			ya1, yb1 = unpack(v1)
			ya2, yb2 = unpack(v2)
			ya3, yb3 = unpack(v3)
		}

		storeComplex(buf, idx(0, 0), ya0)
		storeComplex(buf, idx(1, 0), ya1)
		storeComplex(buf, idx(2, 0), ya2)
		storeComplex(buf, idx(3, 0), ya3)
		storeComplex(buf, idx(0, 1), yb0)
		storeComplex(buf, idx(1, 1), yb1)
		storeComplex(buf, idx(2, 1), yb2)
		storeComplex(buf, idx(3, 1), yb3)
		return
	}

	for i := 0; i < n; i++ {
		i0 := (base + u + i) * 2
		i1 := (base + unit + u + i) * 2
		i2 := (base + 2*unit + u + i) * 2
		i3 := (base + 3*unit + u + i) * 2

		x0 := complexFromSlice(buf, i0)
		x1 := complexFromSlice(buf, i1)
		x2 := complexFromSlice(buf, i2)
		x3 := complexFromSlice(buf, i3)

		if k.params.Type == DIT && unit > 1 {
			x1 = x1.Mul(k.twiddleAt(1, u+i))
			x2 = x2.Mul(k.twiddleAt(2, u+i))
			x3 = x3.Mul(k.twiddleAt(3, u+i))
		}

		s0 := x0.Add(x2)
		s1 := x0.Sub(x2)
		s2 := x1.Add(x3)
		s3 := x1.Sub(x3)
		if !inverse {
			s3 = s3.MulI().Scale(-1)
		} else {
			s3 = s3.MulI()
		}

		y0 := s0.Add(s2)
		y2 := s0.Sub(s2)
		y1 := s1.Add(s3)
		y3 := s1.Sub(s3)

		if k.params.Type == DIF && unit > 1 {
			y1 = y1.Mul(k.twiddleAt(1, u+i))
			y2 = y2.Mul(k.twiddleAt(2, u+i))
			y3 = y3.Mul(k.twiddleAt(3, u+i))
		}

		storeComplex(buf, i0, y0)
		storeComplex(buf, i1, y1)
		storeComplex(buf, i2, y2)
		storeComplex(buf, i3, y3)
	}
}

// simdGenericKernel is the "SSE2 generic" cascade entry for a radix that
// isn't 2 or 4: no rrii/riri pairing applies to an arbitrary-radix direct
// DFT, so it delegates straight to genericKernel. align and width are
// accepted only to match the other cascade entries' construct signature
// (simdVariantCascade calls every entry the same way); this entry has no
// vector path to dispatch into either of them.
type simdGenericKernel struct {
	zeroWorkArea
	inner *genericKernel[float32]
}

func newSIMDGeneric(p CreationParams, align, width int) Kernel[float32] {
	return &simdGenericKernel{inner: NewGeneric[float32](p).(*genericKernel[float32])}
}

func (k *simdGenericKernel) RequiredWorkAreaSize() int { return k.inner.RequiredWorkAreaSize() }

func (k *simdGenericKernel) Transform(p *Params[float32]) { k.inner.Transform(p) }

// packTwiddlesRIRI packs radix-2 per-unit twiddles two at a time into
// riri-layout Vec4s: [re(w_u), im(w_u), re(w_{u+1}), im(w_{u+1})]. width
// is accepted for symmetry with newSIMDRadix2's constructor signature; the
// pack width is always 2 (one Vec4 holds two complex numbers regardless
// of the dispatch cascade's alignment tier — see simdRadix2Kernel/
// simdRadix4Kernel's shared doc comment above).
func packTwiddlesRIRI(p CreationParams, r, width int) []simdutils.Vec4 {
	stageSize := p.Radix * p.Unit
	pairs := (p.Unit + 1) / 2
	out := make([]simdutils.Vec4, pairs)
	for pi := 0; pi < pairs; pi++ {
		u0 := pi * 2
		u1 := u0 + 1
		w0 := Twiddle[float32](r*u0, stageSize, p.Inverse)
		w1 := w0
		if u1 < p.Unit {
			w1 = Twiddle[float32](r*u1, stageSize, p.Inverse)
		}
		out[pi] = simdutils.Vec4{w0.Re, w0.Im, w1.Re, w1.Im}
	}
	return out
}
