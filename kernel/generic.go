package kernel

// genericKernel performs one mixed-radix Cooley-Tukey stage for an
// arbitrary radix, computing the length-radix DFT directly (O(radix^2)
// per butterfly). It is the fallback kernel selected when no specialized
// or SIMD variant's predicate matches (spec §4.3, §4.7 step 5).
type genericKernel[F Float] struct {
	params   CreationParams
	twiddles []Complex[F] // twiddles[u*radix+k] = omega_k for subtransform offset u
}

// NewGeneric builds the generic radix-R butterfly kernel described in
// spec §4.3. It is always correct, including for radix values that are
// not 2 or 4 and for non-power-of-two unit/size combinations (spec §9,
// Open Question 1: kept correct up to N <= 2^20 via plain int arithmetic).
func NewGeneric[F Float](p CreationParams) Kernel[F] {
	k := &genericKernel[F]{params: p}
	if p.Unit > 1 {
		stageSize := p.Radix * p.Unit
		k.twiddles = make([]Complex[F], p.Unit*p.Radix)
		for u := 0; u < p.Unit; u++ {
			for r := 0; r < p.Radix; r++ {
				if r == 0 {
					k.twiddles[u*p.Radix+r] = Complex[F]{1, 0}
					continue
				}
				k.twiddles[u*p.Radix+r] = Twiddle[F](r*u, stageSize, p.Inverse)
			}
		}
	}
	return k
}

// RequiredWorkAreaSize reserves 4 floats per radix element: a twiddled-input
// slot and a DFT-output slot, each a Complex[F] (2 floats), so Transform
// never allocates (spec §4.8, "no per-call allocation").
func (k *genericKernel[F]) RequiredWorkAreaSize() int { return k.params.Radix * 4 }

func (k *genericKernel[F]) Transform(p *Params[F]) {
	params := k.params
	radix := params.Radix
	unit := params.Unit
	groups := params.Groups()

	x := p.WorkArea[:radix*2]          // twiddled inputs, riri
	y := p.WorkArea[radix*2 : radix*4] // DFT outputs, riri

	for g := 0; g < groups; g++ {
		for u := 0; u < unit; u++ {
			base := (g*radix)*unit + u
			for r := 0; r < radix; r++ {
				v := complexFromSlice(p.Coefs, (base+r*unit)*2)
				if params.Type == DIT && unit > 1 && r > 0 {
					v = v.Mul(k.twiddles[u*radix+r])
				}
				storeComplex(x, r*2, v)
			}

			directDFT(x, y, radix, params.Inverse)

			for r := 0; r < radix; r++ {
				v := complexFromSlice(y, r*2)
				if params.Type == DIF && unit > 1 && r > 0 {
					v = v.Mul(k.twiddles[u*radix+r])
				}
				storeComplex(p.Coefs, (base+r*unit)*2, v)
			}
		}
	}
}

// directDFT computes the length-radix DFT of the riri-interleaved x into the
// riri-interleaved y, used as the radix-R butterfly core for arbitrary R
// (spec §4.3: "When radix == size ... the result is a direct DFT of the
// input"). x and y must not alias.
func directDFT[F Float](x, y []F, radix int, inverse bool) {
	for k := 0; k < radix; k++ {
		var acc Complex[F]
		for j := 0; j < radix; j++ {
			w := Twiddle[F]((k*j)%radix, radix, inverse)
			acc = acc.Add(complexFromSlice(x, j*2).Mul(w))
		}
		storeComplex(y, k*2, acc)
	}
}
