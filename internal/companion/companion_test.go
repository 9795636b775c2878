package companion

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// TestImpulseHMatchesDirectRecursion hand-traces h[0..4] for a1=0.5,
// a2=0.25: h=[1, 0.5, 0.5*0.5+0.25=0.5, 0.5*0.5+0.25*0.5=0.375, ...].
func TestImpulseHMatchesDirectRecursion(t *testing.T) {
	h := ImpulseH(0.5, 0.25, 4)
	want := []float64{1, 0.5, 0.5, 0.375}
	want = append(want, 0.5*want[3]+0.25*want[2])
	for i, w := range want {
		if !almostEqual(h[i], w, 1e-12) {
			t.Fatalf("h[%d] = %v, want %v", i, h[i], w)
		}
	}
}

// TestH1H2MatchesHomogeneousSolution verifies y[k] = h1[k]*y[-1] +
// h2[k]*y[-2] against a direct simulation of the feedback-only
// recursion y[k] = a1*y[k-1] + a2*y[k-2].
func TestH1H2MatchesHomogeneousSolution(t *testing.T) {
	a1, a2 := 0.6, -0.2
	const m = 10
	h1, h2 := H1H2(a1, a2, m)

	y1, y2 := 1.3, -0.7 // y[-1], y[-2]
	ym1, ym2 := y1, y2
	y := make([]float64, m)
	for k := 0; k < m; k++ {
		yk := a1*ym1 + a2*ym2
		y[k] = yk
		ym2, ym1 = ym1, yk
	}

	for k := 0; k < m; k++ {
		want := h1[k]*y1 + h2[k]*y2
		if !almostEqual(y[k], want, 1e-9) {
			t.Fatalf("k=%d: direct=%v, h1/h2 reconstruction=%v", k, y[k], want)
		}
	}
}

// TestPowersMatchesRepeatedMatrixMultiplication checks that Powers'
// iterative recurrence produces the same result as repeatedly
// multiplying the seed 2x2 matrix by itself. StepMatrix's (a, b, c, d)
// form the matrix M = [[c, d], [a, b]] in the (y[-2], y[-1]) basis.
func TestPowersMatchesRepeatedMatrixMultiplication(t *testing.T) {
	a, b, c, d := 0.9, 0.1, -0.3, 0.4
	const count = 6
	h22, h12, h21, h11 := Powers(a, b, c, d, count)

	// m22..m11 hold M^1 initially; each loop iteration advances them to
	// M^(n+2).
	m22, m12, m21, m11 := c, d, a, b
	for n := 0; n < count; n++ {
		if !almostEqual(h22[n], m22, 1e-9) || !almostEqual(h12[n], m12, 1e-9) ||
			!almostEqual(h21[n], m21, 1e-9) || !almostEqual(h11[n], m11, 1e-9) {
			t.Fatalf("power %d mismatch: got (%v,%v,%v,%v) want (%v,%v,%v,%v)",
				n+1, h22[n], h12[n], h21[n], h11[n], m22, m12, m21, m11)
		}
		// M^(n+2) = M * M^(n+1), with M = [[c,d],[a,b]] acting on the left.
		n22 := c*m22 + d*m21
		n12 := c*m12 + d*m11
		n21 := a*m22 + b*m21
		n11 := a*m12 + b*m11
		m22, m12, m21, m11 = n22, n12, n21, n11
	}
}

