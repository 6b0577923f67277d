// env.go is the per-thread transform driver built from a Setup.

package yfft

import (
	"fmt"

	"github.com/thesyncim/yfft/aligned"
	"github.com/thesyncim/yfft/kernel"
)

// workAreaAlign is the alignment, in bytes, Env reserves its scratch buffer
// at. 32 is the largest alignment any kernel variant in the selection
// cascade declares (the AVX variants) (spec §4.1, §4.4).
const workAreaAlign = 32

// Env owns the mutable scratch space a Setup's kernels need and drives a
// transform over a caller-supplied buffer. One Env per transforming thread;
// a Setup may back many Envs concurrently (spec §6).
type Env[F kernel.Float] struct {
	setup    *Setup[F]
	workArea *aligned.Buffer[F]
}

// NewEnv builds an Env from a Setup, allocating its scratch buffer once. No
// further allocation occurs on the Transform path (spec §4.8). Allocation
// failure here is not a planning-time condition the caller can meaningfully
// recover from (aligned.Buffer's own doc: unreachable in practice on Go's
// allocator for any alignment this package supports), so it panics rather
// than threading an error through every Env construction site.
func NewEnv[F kernel.Float](s *Setup[F]) *Env[F] {
	wa, err := aligned.New[F](s.RequiredWorkAreaSize(), workAreaAlign)
	if err != nil {
		panic(newPlanError(AllocationFailed, "could not allocate work area: "+err.Error()))
	}
	return &Env[F]{setup: s, workArea: wa}
}

// Transform runs the Env's plan against buf in place. buf's length must
// equal the Setup's BufferLen(); a mismatch panics, since it is a caller
// contract violation rather than a recoverable runtime condition (spec §9,
// Open Question 2).
func (e *Env[F]) Transform(buf []F) {
	want := e.setup.BufferLen()
	if len(buf) != want {
		panic(fmt.Sprintf("yfft: Transform: buffer has length %d, plan requires %d", len(buf), want))
	}

	p := &kernel.Params[F]{Coefs: buf, WorkArea: e.workArea.Slice()}

	s := e.setup
	if s.realKernel != nil && s.realPre {
		s.realKernel.Transform(p)
	}
	for _, st := range s.stages {
		st.k.Transform(p)
	}
	if s.realKernel != nil && !s.realPre {
		s.realKernel.Transform(p)
	}
}
