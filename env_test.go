package yfft

import (
	"math"
	"math/cmplx"
	"testing"
)

func newComplexEnv(t *testing.T, n int, inverse bool, in, out DataOrder) (*Setup[float32], *Env[float32]) {
	t.Helper()
	s, err := NewSetup[float32](&Options{
		Len:              n,
		Inverse:          inverse,
		InputDataOrder:   in,
		OutputDataOrder:  out,
		InputDataFormat:  Complex,
		OutputDataFormat: Complex,
	})
	if err != nil {
		t.Fatalf("NewSetup: %v", err)
	}
	return s, NewEnv[float32](s)
}

func maxAbsDiff(got, want []float32) float32 {
	var m float32
	for i := range got {
		d := got[i] - want[i]
		if d < 0 {
			d = -d
		}
		if d > m {
			m = d
		}
	}
	return m
}

// TestScenarioImpulse is spec §8 scenario 1: a unit impulse transforms to a
// constant sequence.
func TestScenarioImpulse(t *testing.T) {
	_, e := newComplexEnv(t, 4, false, Natural, Natural)
	buf := []float32{1, 0, 0, 0, 0, 0, 0, 0}
	e.Transform(buf)
	want := []float32{1, 0, 1, 0, 1, 0, 1, 0}
	if d := maxAbsDiff(buf, want); d > 1e-3 {
		t.Errorf("got %v, want %v (diff %v)", buf, want, d)
	}
}

// TestScenarioConstant is spec §8 scenario 2: a constant sequence
// transforms to an impulse at DC.
func TestScenarioConstant(t *testing.T) {
	_, e := newComplexEnv(t, 4, false, Natural, Natural)
	buf := []float32{1, 0, 1, 0, 1, 0, 1, 0}
	e.Transform(buf)
	want := []float32{4, 0, 0, 0, 0, 0, 0, 0}
	if d := maxAbsDiff(buf, want); d > 1e-3 {
		t.Errorf("got %v, want %v (diff %v)", buf, want, d)
	}
}

// TestScenarioComplexExponential is spec §8 scenario 3: a single-cycle
// complex exponential transforms to an impulse at bin 1.
func TestScenarioComplexExponential(t *testing.T) {
	_, e := newComplexEnv(t, 4, false, Natural, Natural)
	buf := []float32{1, 0, 0, 1, -1, 0, 0, -1}
	e.Transform(buf)
	want := []float32{0, 0, 4, 0, 0, 0, 0, 0}
	if d := maxAbsDiff(buf, want); d > 1e-3 {
		t.Errorf("got %v, want %v (diff %v)", buf, want, d)
	}
}

// TestScenarioSwizzledRoundTrip is spec §8 scenario 4: a forward
// Natural->Swizzled plan followed by an inverse Swizzled->Natural plan of
// the same length recovers the original buffer scaled by N, with neither
// side performing an explicit bit-reversal pass itself.
func TestScenarioSwizzledRoundTrip(t *testing.T) {
	const n = 128
	orig := make([]float32, n*2)
	orig[42*2] = 100
	orig[82*2] = 200

	_, fwd := newComplexEnv(t, n, false, Natural, Swizzled)
	_, inv := newComplexEnv(t, n, true, Swizzled, Natural)

	buf := append([]float32(nil), orig...)
	fwd.Transform(buf)
	inv.Transform(buf)

	for i := range buf {
		buf[i] /= float32(n)
	}
	if d := maxAbsDiff(buf, orig); d > 1e-2 {
		t.Errorf("round trip max diff %v, want <= 1e-2 (got %v want %v)", d, buf, orig)
	}
}

// TestScenarioRealForward is spec §8 scenario 5: a real forward transform
// of a length-8 rectangular pulse produces the documented DC/Nyquist and
// bin-1 magnitude.
func TestScenarioRealForward(t *testing.T) {
	s, err := NewSetup[float32](&Options{
		Len:              8,
		InputDataFormat:  Real,
		OutputDataFormat: Real,
	})
	if err != nil {
		t.Fatalf("NewSetup: %v", err)
	}
	e := NewEnv[float32](s)
	buf := []float32{1, 1, 1, 1, 0, 0, 0, 0}
	e.Transform(buf)

	if math.Abs(float64(buf[0])-4) > 1e-3 {
		t.Errorf("DC=%v, want 4", buf[0])
	}
	if math.Abs(float64(buf[1])-0) > 1e-3 {
		t.Errorf("Nyquist=%v, want 0", buf[1])
	}
	mag := cmplx.Abs(complex(float64(buf[2]), float64(buf[3])))
	if math.Abs(mag-2.613) > 1e-2 {
		t.Errorf("bin 1 magnitude=%v, want ~2.613", mag)
	}
}

// TestScenarioRandomInverseRoundTrip is spec §8 scenario 6: an inverse
// transform applied to a forward transform's output, divided by N,
// recovers a random input.
func TestScenarioRandomInverseRoundTrip(t *testing.T) {
	const n = 16
	orig := []float32{
		0.42, -1.1, 2.3, 0.05, -0.9, 1.0, 0.0, -2.2,
		1.1, 1.1, -0.5, 0.25, 3.0, -3.0, 0.1, -0.1,
		0.7, -0.7, 1.9, 2.1, -1.4, 0.6, 0.3, 0.9,
		-2.5, 1.3, 0.0, 0.0, 1.0, -1.0, 2.0, -2.0,
	}

	_, fwd := newComplexEnv(t, n, false, Natural, Natural)
	_, inv := newComplexEnv(t, n, true, Natural, Natural)

	buf := append([]float32(nil), orig...)
	fwd.Transform(buf)
	inv.Transform(buf)
	for i := range buf {
		buf[i] /= float32(n)
	}
	if d := maxAbsDiff(buf, orig); d > 1e-2 {
		t.Errorf("round trip max diff %v, want <= 1e-2", d)
	}
}

// TestInvariantLinearity is spec §8 invariant 2.
func TestInvariantLinearity(t *testing.T) {
	const n = 8
	x := []float32{1, 2, -1, 0, 3, -2, 0.5, 1, -1, -1, 2, 2, 0, 0, -3, 1}
	y := []float32{-2, 1, 0, 1, 1, 1, -1, 0, 2, -2, 0, 3, 1, -1, 0, 0}
	const alpha, beta = 2.5, -1.5

	combined := make([]float32, len(x))
	for i := range combined {
		combined[i] = float32(alpha)*x[i] + float32(beta)*y[i]
	}

	_, e1 := newComplexEnv(t, n, false, Natural, Natural)
	_, e2 := newComplexEnv(t, n, false, Natural, Natural)
	_, e3 := newComplexEnv(t, n, false, Natural, Natural)

	fx := append([]float32(nil), x...)
	fy := append([]float32(nil), y...)
	fc := combined
	e1.Transform(fx)
	e2.Transform(fy)
	e3.Transform(fc)

	want := make([]float32, len(fx))
	for i := range want {
		want[i] = float32(alpha)*fx[i] + float32(beta)*fy[i]
	}
	if d := maxAbsDiff(fc, want); d > 1e-2 {
		t.Errorf("F(ax+by) vs aF(x)+bF(y): max diff %v, want <= 1e-2", d)
	}
}

// TestInvariantParseval is spec §8 invariant 3.
func TestInvariantParseval(t *testing.T) {
	const n = 16
	x := make([]float32, n*2)
	for i := 0; i < n; i++ {
		x[2*i] = float32(math.Sin(float64(i) * 0.9))
		x[2*i+1] = float32(math.Cos(float64(i) * 0.4))
	}

	var energyIn float64
	for i := 0; i < n; i++ {
		energyIn += float64(x[2*i])*float64(x[2*i]) + float64(x[2*i+1])*float64(x[2*i+1])
	}

	_, e := newComplexEnv(t, n, false, Natural, Natural)
	buf := append([]float32(nil), x...)
	e.Transform(buf)

	var energyOut float64
	for i := 0; i < n; i++ {
		energyOut += float64(buf[2*i])*float64(buf[2*i]) + float64(buf[2*i+1])*float64(buf[2*i+1])
	}
	energyOut /= float64(n)

	if d := math.Abs(energyOut - energyIn); d > 1e-2*energyIn {
		t.Errorf("Parseval: sum|x|^2=%v, (1/N)sum|X|^2=%v, diff %v", energyIn, energyOut, d)
	}
}

// TestWorkAreaIsolation is spec §8 invariant 7: overwriting the scratch
// area with a sentinel before a call must not change the output.
func TestWorkAreaIsolation(t *testing.T) {
	const n = 8
	x := []float32{1, -1, 2, 0, -3, 1, 0.5, 2, 1, 1, -2, -2, 0, 3, -1, 0}

	s, err := NewSetup[float32](&Options{
		Len:              n,
		InputDataFormat:  Complex,
		OutputDataFormat: Complex,
	})
	if err != nil {
		t.Fatalf("NewSetup: %v", err)
	}

	e1 := NewEnv[float32](s)
	buf1 := append([]float32(nil), x...)
	e1.Transform(buf1)

	e2 := NewEnv[float32](s)
	wa := e2.workArea.Slice()
	for i := range wa {
		wa[i] = 9999
	}
	buf2 := append([]float32(nil), x...)
	e2.Transform(buf2)

	if d := maxAbsDiff(buf1, buf2); d > 0 {
		t.Errorf("sentinel-poisoned work area changed the output: max diff %v", d)
	}
}

// TestSwizzleStability is spec §8 invariant 5: two Setups built from
// identical Options produce bit-identical outputs for identical inputs.
func TestSwizzleStability(t *testing.T) {
	const n = 32
	x := make([]float32, n*2)
	for i := range x {
		x[i] = float32(i%7) - 3
	}

	opts := &Options{Len: n, InputDataFormat: Complex, OutputDataFormat: Complex}
	s1, err := NewSetup[float32](opts)
	if err != nil {
		t.Fatalf("NewSetup: %v", err)
	}
	s2, err := NewSetup[float32](opts)
	if err != nil {
		t.Fatalf("NewSetup: %v", err)
	}

	buf1 := append([]float32(nil), x...)
	buf2 := append([]float32(nil), x...)
	NewEnv[float32](s1).Transform(buf1)
	NewEnv[float32](s2).Transform(buf2)

	for i := range buf1 {
		if buf1[i] != buf2[i] {
			t.Fatalf("outputs diverge at %d: %v vs %v", i, buf1[i], buf2[i])
		}
	}
}

// TestTransformPanicsOnWrongBufferLength is spec §9 Open Question 2,
// resolved as panic (DESIGN.md resolution 2).
func TestTransformPanicsOnWrongBufferLength(t *testing.T) {
	_, e := newComplexEnv(t, 8, false, Natural, Natural)
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a mismatched buffer length")
		}
	}()
	e.Transform(make([]float32, 4))
}
