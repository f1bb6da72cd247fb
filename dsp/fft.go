// Package dsp holds the spectral analysis behind the audio visualizer:
// a radix-2 FFT and the bin helpers the bar display reads.
package dsp

import (
	"fmt"
	"math"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform of x in place using an
// iterative radix-2 Cooley-Tukey. Length must be a power of two.
func FFT(x []complex128) error {
	n := len(x)
	if n == 0 || n&(n-1) != 0 {
		return fmt.Errorf("dsp: fft length %d is not a power of two", n)
	}

	// Bit-reversal permutation
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := cmplx.Exp(complex(0, -2*math.Pi/float64(size)))
		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for k := 0; k < half; k++ {
				even := x[start+k]
				odd := x[start+k+half] * w
				x[start+k] = even + odd
				x[start+k+half] = even - odd
				w *= step
			}
		}
	}
	return nil
}

// Hann returns an n-point Hann window
func Hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}

// Bin is one frequency bin of a spectrum: the magnitude of the FFT
// output and the phase folded into [0, 1).
type Bin struct {
	Magnitude float64
	Phase     float64
}

// Spectrum windows the samples, runs the FFT, and returns the first
// count bins. The phase ratio is fmod(1 + atan2(re, im)/2pi, 1), the
// mapping the visualizer uses for its hue bars.
func Spectrum(samples []float64, count int) ([]Bin, error) {
	n := len(samples)
	x := make([]complex128, n)
	window := Hann(n)
	for i, s := range samples {
		x[i] = complex(s*window[i], 0)
	}
	if err := FFT(x); err != nil {
		return nil, err
	}
	if count > n {
		count = n
	}
	bins := make([]Bin, count)
	for i := range bins {
		re := real(x[i])
		im := imag(x[i])
		bins[i] = Bin{
			Magnitude: cmplx.Abs(x[i]),
			Phase:     math.Mod(1+math.Atan2(re, im)/(2*math.Pi), 1),
		}
	}
	return bins, nil
}
