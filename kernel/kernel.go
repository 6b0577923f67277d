package kernel

import "fmt"

// KernelType selects whether a stage applies its twiddle multiplication
// before (decimation-in-time) or after (decimation-in-frequency) the
// size-radix butterfly.
type KernelType int

const (
	// DIT is decimation-in-time: twiddle applied before the butterfly.
	DIT KernelType = iota
	// DIF is decimation-in-frequency: twiddle applied after the butterfly.
	DIF
)

func (t KernelType) String() string {
	switch t {
	case DIT:
		return "DIT"
	case DIF:
		return "DIF"
	default:
		return fmt.Sprintf("KernelType(%d)", int(t))
	}
}

// CreationParams is the immutable description of one Cooley-Tukey stage,
// emitted by the planner for each kernel it selects (spec §3).
type CreationParams struct {
	// Size is the total transform length for this stage's complex domain.
	Size int
	// Type selects DIT or DIF twiddle placement.
	Type KernelType
	// Radix is the butterfly fan-out (2 or 4 on the fast path; any value
	// on the generic path).
	Radix int
	// Unit is the subtransform stride: 1 <= Unit <= Size/Radix.
	Unit int
	// Inverse selects the sign of the twiddle exponent.
	Inverse bool
}

// Groups is the number of butterfly groups this stage processes:
// Size = Radix * Unit * Groups.
func (p CreationParams) Groups() int {
	return p.Size / (p.Radix * p.Unit)
}

// Params bundles the mutable buffers a Kernel sees at transform time.
type Params[F Float] struct {
	// Coefs is the caller's transform buffer, riri-interleaved.
	Coefs []F
	// WorkArea is scratch space, at least RequiredWorkAreaSize() elements.
	WorkArea []F
}

// Kernel is a single stage of a plan: stateless with respect to buffer
// identity, but may own precomputed twiddle tables. A Kernel must be safe
// to invoke concurrently from many goroutines provided each call receives
// exclusive access to its own Params.
type Kernel[F Float] interface {
	Transform(p *Params[F])
	RequiredWorkAreaSize() int
}

// zeroWorkArea is embedded by kernels that need no scratch space; it
// supplies the default RequiredWorkAreaSize implementation (spec §4.3's
// "0 unless the kernel needs temporary storage").
type zeroWorkArea struct{}

func (zeroWorkArea) RequiredWorkAreaSize() int { return 0 }
