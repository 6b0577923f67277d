package kernel

// BitReversalKernel permutes a complex buffer into (or out of) the
// digit-reversed order a Cooley-Tukey stage sequence needs at whichever
// end of the pipeline isn't left Swizzled (spec §4.5). Destination index j
// gathers from source index order[j], where order is built by repeatedly
// splitting the index range by the *last* stage's radix, then the
// second-to-last, and so on down to the first (buildDigitReversalOrder):
// for a uniform radix-2 factorization this is exactly classic bit
// reversal, but for the radix-4-heavy factorizations this planner
// actually produces (spec §4.7 step 3: radix-4 preferred, radix-2 only as
// a trailing remainder) it is not — a plain bitwise reversal silently
// computes the wrong transform whenever a radix-4 stage is involved. See
// DESIGN.md's "digit reversal" entry for the derivation.
type BitReversalKernel[F Float] struct {
	order []int // order[j] = source complex index feeding destination j
}

// NewBitReversal builds the digit-reversal permutation for a Cooley-Tukey
// stage sequence over radices, listed in the same order buildComplexStages
// iterates them for a DIT plan (the first-processed stage's radix first).
// The transform's complex length is the product of radices.
func NewBitReversal[F Float](radices []int) *BitReversalKernel[F] {
	n := 1
	for _, r := range radices {
		n *= r
	}
	natural := make([]int, n)
	for i := range natural {
		natural[i] = i
	}
	return &BitReversalKernel[F]{order: buildDigitReversalOrder(natural, radices)}
}

// buildDigitReversalOrder deinterleaves indices by the last remaining
// radix into that many contiguous runs (run r holds the indices congruent
// to r modulo the last radix, in their original relative order), then
// recurses on each run with the radix list shortened by one. A list of
// zero or one radix needs no split: a single stage reads its operands
// directly in whatever relative order they already have.
func buildDigitReversalOrder(indices, radices []int) []int {
	if len(radices) <= 1 {
		out := make([]int, len(indices))
		copy(out, indices)
		return out
	}
	last := radices[len(radices)-1]
	runs := make([][]int, last)
	for j, v := range indices {
		runs[j%last] = append(runs[j%last], v)
	}
	rest := radices[:len(radices)-1]
	out := make([]int, 0, len(indices))
	for _, run := range runs {
		out = append(out, buildDigitReversalOrder(run, rest)...)
	}
	return out
}

// RequiredWorkAreaSize reserves a full copy of the buffer (2 floats per
// complex element): the permutation this kernel applies is not generally
// an involution once a mixed radix-4/radix-2 sequence is in play, so it
// cannot be realized as in-place index swaps the way a pure binary
// bit-reversal can — Transform gathers from a scratch copy instead.
func (k *BitReversalKernel[F]) RequiredWorkAreaSize() int { return len(k.order) * 2 }

func (k *BitReversalKernel[F]) Transform(p *Params[F]) {
	n := len(k.order)
	scratch := p.WorkArea[:n*2]
	copy(scratch, p.Coefs[:n*2])
	for j, src := range k.order {
		p.Coefs[j*2] = scratch[src*2]
		p.Coefs[j*2+1] = scratch[src*2+1]
	}
}
