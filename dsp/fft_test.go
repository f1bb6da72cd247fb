package dsp

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestFFTRejectsNonPowerOfTwo(t *testing.T) {
	for _, n := range []int{0, 3, 6, 100} {
		if err := FFT(make([]complex128, n)); err == nil {
			t.Errorf("Expected error for length %d", n)
		}
	}
}

func TestFFTImpulse(t *testing.T) {
	// A unit impulse transforms to an all-ones spectrum
	x := make([]complex128, 8)
	x[0] = 1
	if err := FFT(x); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i, v := range x {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Errorf("Bin %d: expected 1, got %v", i, v)
		}
	}
}

func TestFFTDC(t *testing.T) {
	// A constant signal concentrates in bin 0
	x := make([]complex128, 16)
	for i := range x {
		x[i] = 1
	}
	if err := FFT(x); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cmplx.Abs(x[0]-16) > 1e-12 {
		t.Errorf("Expected bin 0 = 16, got %v", x[0])
	}
	for i := 1; i < 16; i++ {
		if cmplx.Abs(x[i]) > 1e-12 {
			t.Errorf("Expected bin %d = 0, got %v", i, x[i])
		}
	}
}

func TestFFTSingleTone(t *testing.T) {
	// A pure k-cycle cosine puts energy only in bins k and n-k
	const n, k = 64, 5
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(math.Cos(2*math.Pi*k*float64(i)/n), 0)
	}
	if err := FFT(x); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i := 0; i < n; i++ {
		mag := cmplx.Abs(x[i])
		if i == k || i == n-k {
			if math.Abs(mag-n/2) > 1e-9 {
				t.Errorf("Bin %d: expected %d, got %g", i, n/2, mag)
			}
		} else if mag > 1e-9 {
			t.Errorf("Bin %d: expected 0, got %g", i, mag)
		}
	}
}

func TestFFTMatchesDirectDFT(t *testing.T) {
	const n = 32
	src := make([]complex128, n)
	for i := range src {
		src[i] = complex(math.Sin(0.3*float64(i))+0.5*math.Cos(1.7*float64(i)), 0)
	}

	x := make([]complex128, n)
	copy(x, src)
	if err := FFT(x); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for k := 0; k < n; k++ {
		var want complex128
		for i := 0; i < n; i++ {
			angle := -2 * math.Pi * float64(k) * float64(i) / n
			want += src[i] * cmplx.Exp(complex(0, angle))
		}
		if cmplx.Abs(x[k]-want) > 1e-9 {
			t.Errorf("Bin %d: expected %v, got %v", k, want, x[k])
		}
	}
}

func TestHann(t *testing.T) {
	w := Hann(9)
	if w[0] > 1e-12 || w[8] > 1e-12 {
		t.Errorf("Expected zero endpoints, got %g and %g", w[0], w[8])
	}
	if math.Abs(w[4]-1) > 1e-12 {
		t.Errorf("Expected peak 1 at center, got %g", w[4])
	}
	if math.Abs(w[2]-w[6]) > 1e-12 {
		t.Error("Expected symmetric window")
	}
}

func TestSpectrum(t *testing.T) {
	const n = 256
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 16 * float64(i) / n)
	}

	bins, err := Spectrum(samples, 128)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(bins) != 128 {
		t.Fatalf("Expected 128 bins, got %d", len(bins))
	}

	peak := 0
	for i, b := range bins {
		if b.Magnitude > bins[peak].Magnitude {
			peak = i
		}
		if b.Phase < 0 || b.Phase >= 1 {
			t.Errorf("Bin %d: phase %g outside [0, 1)", i, b.Phase)
		}
	}
	if peak != 16 {
		t.Errorf("Expected peak at bin 16, got %d", peak)
	}
}

func TestSpectrumClampsCount(t *testing.T) {
	bins, err := Spectrum(make([]float64, 8), 100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(bins) != 8 {
		t.Errorf("Expected count clamped to 8, got %d", len(bins))
	}
}
