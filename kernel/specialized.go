package kernel

// specializedRadix2Kernel and specializedRadix4Kernel are the hand-unrolled,
// non-SIMD kernels described in spec §4.3/§9 ("specialized-generic" in the
// selection cascade, between the SIMD variants and the fully generic
// direct-DFT kernel). They avoid genericKernel's O(radix^2) direct DFT by
// unrolling the radix-2/4 butterfly algebra directly, matching gopus's
// kfBfly2M1/kfBfly4M1 (celt/kissfft32_opt_stub.go) term-for-term.

type specializedRadix2Kernel[F Float] struct {
	zeroWorkArea
	params   CreationParams
	twiddles []Complex[F] // twiddles[u], u in [0,unit)
}

// NewSpecializedRadix2 builds the unrolled radix-2 kernel.
func NewSpecializedRadix2[F Float](p CreationParams) Kernel[F] {
	k := &specializedRadix2Kernel[F]{params: p}
	if p.Unit > 1 {
		k.twiddles = make([]Complex[F], p.Unit)
		for u := 0; u < p.Unit; u++ {
			k.twiddles[u] = Twiddle[F](u, p.Radix*p.Unit, p.Inverse)
		}
	}
	return k
}

func (k *specializedRadix2Kernel[F]) Transform(p *Params[F]) {
	unit := k.params.Unit
	groups := k.params.Groups()
	buf := p.Coefs

	for g := 0; g < groups; g++ {
		base := g * 2 * unit
		for u := 0; u < unit; u++ {
			i0 := (base + u) * 2
			i1 := (base + unit + u) * 2
			x0 := complexFromSlice(buf, i0)
			x1 := complexFromSlice(buf, i1)

			if k.params.Type == DIT && unit > 1 {
				x1 = x1.Mul(k.twiddles[u])
				storeComplex(buf, i0, x0.Add(x1))
				storeComplex(buf, i1, x0.Sub(x1))
				continue
			}

			y0 := x0.Add(x1)
			y1 := x0.Sub(x1)
			if k.params.Type == DIF && unit > 1 {
				y1 = y1.Mul(k.twiddles[u])
			}
			storeComplex(buf, i0, y0)
			storeComplex(buf, i1, y1)
		}
	}
}

type specializedRadix4Kernel[F Float] struct {
	zeroWorkArea
	params   CreationParams
	twiddles []Complex[F] // twiddles[u*3 + (r-1)], r in [1,4)
}

// NewSpecializedRadix4 builds the unrolled radix-4 kernel.
func NewSpecializedRadix4[F Float](p CreationParams) Kernel[F] {
	k := &specializedRadix4Kernel[F]{params: p}
	if p.Unit > 1 {
		k.twiddles = make([]Complex[F], p.Unit*3)
		stageSize := p.Radix * p.Unit
		for u := 0; u < p.Unit; u++ {
			for r := 1; r < 4; r++ {
				k.twiddles[u*3+(r-1)] = Twiddle[F](r*u, stageSize, p.Inverse)
			}
		}
	}
	return k
}

func (k *specializedRadix4Kernel[F]) Transform(p *Params[F]) {
	unit := k.params.Unit
	groups := k.params.Groups()
	buf := p.Coefs
	inverse := k.params.Inverse

	for g := 0; g < groups; g++ {
		base := g * 4 * unit
		for u := 0; u < unit; u++ {
			i0 := (base + u) * 2
			i1 := (base + unit + u) * 2
			i2 := (base + 2*unit + u) * 2
			i3 := (base + 3*unit + u) * 2

			x0 := complexFromSlice(buf, i0)
			x1 := complexFromSlice(buf, i1)
			x2 := complexFromSlice(buf, i2)
			x3 := complexFromSlice(buf, i3)

			if k.params.Type == DIT && unit > 1 {
				x1 = x1.Mul(k.twiddles[u*3+0])
				x2 = x2.Mul(k.twiddles[u*3+1])
				x3 = x3.Mul(k.twiddles[u*3+2])
			}

			// Classic radix-4 butterfly: two radix-2 stages plus a +-i
			// cross rotation (the "twiddle-free" factor baked into a
			// radix-4 DFT). Matches kfBfly4M1's scratch0/scratch1 shape.
			s0 := x0.Add(x2)
			s1 := x0.Sub(x2)
			s2 := x1.Add(x3)
			s3 := x1.Sub(x3)
			if !inverse {
				s3 = s3.MulI().Scale(-1) // -i*s3: j goes the opposite way forward
			} else {
				s3 = s3.MulI()
			}

			y0 := s0.Add(s2)
			y2 := s0.Sub(s2)
			y1 := s1.Add(s3)
			y3 := s1.Sub(s3)

			if k.params.Type == DIF && unit > 1 {
				y1 = y1.Mul(k.twiddles[u*3+0])
				y2 = y2.Mul(k.twiddles[u*3+1])
				y3 = y3.Mul(k.twiddles[u*3+2])
			}

			storeComplex(buf, i0, y0)
			storeComplex(buf, i1, y1)
			storeComplex(buf, i2, y2)
			storeComplex(buf, i3, y3)
		}
	}
}
