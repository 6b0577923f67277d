package kernel

import "math"

// refDFT computes the direct length-n DFT (or inverse DFT, unnormalized) of
// x in complex128, independently of any production code, as the ground
// truth kernel-level tests compare against.
func refDFT(x []complex128, inverse bool) []complex128 {
	n := len(x)
	y := make([]complex128, n)
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	for k := 0; k < n; k++ {
		var acc complex128
		for j := 0; j < n; j++ {
			angle := sign * 2 * math.Pi * float64(k*j) / float64(n)
			w := complex(math.Cos(angle), math.Sin(angle))
			acc += x[j] * w
		}
		y[k] = acc
	}
	return y
}

func toRiri32(x []complex128) []float32 {
	out := make([]float32, len(x)*2)
	for i, v := range x {
		out[2*i] = float32(real(v))
		out[2*i+1] = float32(imag(v))
	}
	return out
}

func fromRiri32(buf []float32) []complex128 {
	out := make([]complex128, len(buf)/2)
	for i := range out {
		out[i] = complex(float64(buf[2*i]), float64(buf[2*i+1]))
	}
	return out
}

func maxComplexDiff(a, b []complex128) float64 {
	var maxDiff float64
	for i := range a {
		d := a[i] - b[i]
		mag := math.Hypot(real(d), imag(d))
		if mag > maxDiff {
			maxDiff = mag
		}
	}
	return maxDiff
}
