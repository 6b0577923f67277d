// setup.go builds an immutable transform plan from an Options record.

package yfft

import (
	"fmt"

	"github.com/thesyncim/yfft/kernel"
)

// maxSupportedLength bounds the complex-domain transform size the planner
// will factorize. It sits above the generic kernel's documented correctness
// range (spec §9, Open Question 1: correct up to N<=2^20); a planner has to
// draw a line somewhere to keep its own arithmetic (group/unit products) in int range
// on 32-bit platforms; 2^24 leaves ample headroom above the audio-relevant
// sizes this engine targets.
const maxSupportedLength = 1 << 24

// stage is one entry of a plan's kernel sequence together with the
// CreationParams it was built from, kept around for diagnostics.
type stage[F kernel.Float] struct {
	params CreationParams
	k      kernel.Kernel[F]
}

// CreationParams re-exports kernel.CreationParams so callers inspecting a
// Setup's plan (tests, diagnostics) don't need to import the kernel package
// directly.
type CreationParams = kernel.CreationParams

// Setup is an immutable transform plan built from an Options record (spec
// §6). It is safe to share across goroutines; build one Env per transforming
// thread from it.
type Setup[F kernel.Float] struct {
	opts Options

	complexLen int // M: the complex-domain transform length
	realKernel kernel.Kernel[F]
	realPre    bool // true: realKernel runs before the complex stages

	stages       []stage[F]
	workAreaSize int
}

// NewSetup builds a Setup from opts, factorizing its length into a sequence
// of Cooley-Tukey stages, an optional bit-reversal permutation, and
// optional real-FFT pre/post processing (spec §4.7). It returns a *PlanError
// for any Options combination the engine cannot realize.
func NewSetup[F kernel.Float](opts *Options) (*Setup[F], error) {
	if opts.Len <= 0 {
		return nil, newPlanError(InvalidInputOutputLength, fmt.Sprintf("length %d must be positive", opts.Len))
	}
	if opts.InputDataFormat != opts.OutputDataFormat {
		return nil, newPlanError(InvalidInputOutputFormat, "input and output data format must match")
	}

	s := &Setup[F]{opts: *opts}

	realFormat := opts.InputDataFormat == Real
	if realFormat {
		if opts.Len%2 != 0 {
			return nil, newPlanError(InvalidInputOutputFormat, fmt.Sprintf("real format requires an even length, got %d", opts.Len))
		}
		if opts.InputDataOrder != Natural || opts.OutputDataOrder != Natural {
			return nil, newPlanError(InvalidInputOutputFormat, "real format requires Natural data order at both ends")
		}
		s.complexLen = opts.Len / 2
	} else {
		s.complexLen = opts.Len
	}

	if s.complexLen > maxSupportedLength {
		return nil, newPlanError(UnsupportedLength, fmt.Sprintf("complex length %d exceeds the supported bound %d", s.complexLen, maxSupportedLength))
	}

	inputOrder, outputOrder := opts.InputDataOrder, opts.OutputDataOrder
	if realFormat {
		// The complex-domain core of a real plan always runs Natural-in,
		// Natural-out: the real-FFT kernel at the real/complex boundary
		// needs its adjoining complex buffer in natural order (spec §4.6).
		inputOrder, outputOrder = Natural, Natural
	}

	if isPowerOfTwo(s.complexLen) {
		radices := factorize(s.complexLen)

		// A single radix stage (complexLen is 1, 2, or 4) computes the whole
		// transform directly (Radix==Size, Unit==1): there is no multi-digit
		// Cooley-Tukey index split for a trailing bit-reversal to undo, so
		// Natural and Swizzled coincide here exactly as they do on the
		// non-power-of-two path below. Only a genuine multi-stage
		// decomposition (len(radices) >= 2) produces a digit-reversed
		// intermediate order that needs sorting out.
		if len(radices) <= 1 {
			if err := s.buildComplexStages(radices, kernel.DIT, opts.Inverse); err != nil {
				return nil, err
			}
		} else {
			// DIT's per-stage algebra (twiddle applied before the radix
			// butterfly, unit increasing in factorization order) is the
			// textbook decimation-in-time recursion: it requires its input
			// already in digit-reversed order and always hands back
			// Natural order. DIF (twiddle after the butterfly, unit
			// decreasing, radix list walked in reverse) is its dual: fed
			// Natural input directly it hands back digit-reversed
			// (Swizzled) output with no permutation at all. Natural input
			// is therefore only free to use with DIF when the requested
			// output is Swizzled; every other combination needs DIT, with
			// the digit-reversal permutation placed wherever it turns the
			// available order into what DIT needs (prepended) or turns
			// DIT's Natural output into what the caller asked for
			// (appended). Verified against a direct-DFT reference for
			// mixed radix-4/radix-2 sequences; see DESIGN.md's "digit
			// reversal" entry — a plain positional reading of spec §4.7
			// step 3's DIT/DIF selection sentence does not hold once a
			// radix-4 stage is involved, only this algebraic one does.
			if inputOrder == Natural && outputOrder == Swizzled {
				if err := s.buildComplexStages(radices, kernel.DIF, opts.Inverse); err != nil {
					return nil, err
				}
			} else if inputOrder == Swizzled && outputOrder == Natural {
				if err := s.buildComplexStages(radices, kernel.DIT, opts.Inverse); err != nil {
					return nil, err
				}
			} else if inputOrder == Natural && outputOrder == Natural {
				br := kernel.NewBitReversal[F](radices)
				s.stages = append(s.stages, stage[F]{k: br})
				if err := s.buildComplexStages(radices, kernel.DIT, opts.Inverse); err != nil {
					return nil, err
				}
			} else { // Swizzled -> Swizzled
				if err := s.buildComplexStages(radices, kernel.DIT, opts.Inverse); err != nil {
					return nil, err
				}
				br := kernel.NewBitReversal[F](radices)
				s.stages = append(s.stages, stage[F]{k: br})
			}
		}
	} else {
		// Non-power-of-two length: collapse straight to a single
		// Radix==Size, Unit==1 generic stage, a plain O(size^2) direct DFT
		// that reads and writes natural order directly (spec §9 Open
		// Question 1: correct, not fast) rather than factorizing further —
		// out of scope given the spec's power-of-two performance focus.
		// A single stage computes the whole transform directly with no
		// multi-digit index split, so Natural and Swizzled coincide here
		// too and no permutation stage is ever appended.
		cp := kernel.CreationParams{Size: s.complexLen, Type: kernel.DIT, Radix: s.complexLen, Unit: 1, Inverse: opts.Inverse}
		s.stages = append(s.stages, stage[F]{params: cp, k: kernel.New[F](cp)})
	}

	if realFormat {
		rk := kernel.NewRealFFT[F](opts.Len, opts.Inverse)
		s.realKernel = rk
		s.realPre = opts.Inverse
	}

	s.workAreaSize = 0
	for _, st := range s.stages {
		if n := st.k.RequiredWorkAreaSize(); n > s.workAreaSize {
			s.workAreaSize = n
		}
	}
	if s.realKernel != nil {
		if n := s.realKernel.RequiredWorkAreaSize(); n > s.workAreaSize {
			s.workAreaSize = n
		}
	}

	return s, nil
}

// isPowerOfTwo reports whether m is a power of two. m==1 counts (2^0).
func isPowerOfTwo(m int) bool { return m > 0 && m&(m-1) == 0 }

// factorize decomposes a power-of-two m into a sequence of radix-4 stages
// with an optional trailing radix-2 stage (spec §4.7 step 3: "while M
// divisible by 4, emit radix-4; if a trailing factor of 2 remains, emit
// radix-2"). Callers only invoke this once isPowerOfTwo(m) holds, so the
// loop always fully consumes m; a leftover factor would indicate m wasn't
// a power of two.
func factorize(m int) []int {
	if m <= 1 {
		return nil
	}
	var radices []int
	n := m
	for n%4 == 0 {
		radices = append(radices, 4)
		n /= 4
	}
	if n%2 == 0 {
		radices = append(radices, 2)
		n /= 2
	}
	return radices
}

// buildComplexStages turns a radix list into a sequence of kernel stages,
// assigning each stage's Unit per spec §4.7 step 4: DIT stages iterate unit
// upward from 1 in factorization order; DIF stages iterate unit downward
// from size/radix, which means walking the radix list in reverse.
func (s *Setup[F]) buildComplexStages(radices []int, kernelType kernel.KernelType, inverse bool) error {
	size := s.complexLen
	if size <= 1 {
		return nil
	}

	order := radices
	if kernelType == kernel.DIF {
		order = make([]int, len(radices))
		for i, r := range radices {
			order[len(radices)-1-i] = r
		}
	}

	unit := 1
	if kernelType == kernel.DIF {
		unit = size
	}

	for _, radix := range order {
		if kernelType == kernel.DIT {
			cp := kernel.CreationParams{Size: size, Type: kernelType, Radix: radix, Unit: unit, Inverse: inverse}
			s.stages = append(s.stages, stage[F]{params: cp, k: kernel.New[F](cp)})
			unit *= radix
		} else {
			unit /= radix
			cp := kernel.CreationParams{Size: size, Type: kernelType, Radix: radix, Unit: unit, Inverse: inverse}
			s.stages = append(s.stages, stage[F]{params: cp, k: kernel.New[F](cp)})
		}
	}
	return nil
}

// RequiredWorkAreaSize returns the scratch space, in F elements, an Env
// built from this Setup must reserve.
func (s *Setup[F]) RequiredWorkAreaSize() int { return s.workAreaSize }

// BufferLen returns the length, in F elements, a buffer passed to
// Env.Transform must have.
func (s *Setup[F]) BufferLen() int {
	if s.opts.InputDataFormat == Real {
		return s.opts.Len
	}
	return s.opts.Len * 2
}
