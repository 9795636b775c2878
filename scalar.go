package cascadeiir

import "github.com/cwbudde/cascadeiir/internal/stage"

// scalarSection runs the direct-form recursion for one section,
// sample by sample, against the x/y history in hist (ordered
// x[-2],x[-1],y[-2],y[-1]), mirroring dsp/filter/biquad's
// processBlockScalar. hist is updated in place so the section can
// resume correctly on the next call.
func scalarSection[T Sample](c stage.Coefficients, x []T, hist *[4]T) []T {
	b0, b1, b2 := T(c.B0), T(c.B1), T(c.B2)
	a1, a2 := T(c.A1), T(c.A2)
	x2, x1, y2, y1 := hist[0], hist[1], hist[2], hist[3]

	y := make([]T, len(x))
	for n, xn := range x {
		yn := b0*xn + b1*x1 + b2*x2 + a1*y1 + a2*y2
		y[n] = yn
		x2, x1 = x1, xn
		y2, y1 = y1, yn
	}

	hist[0], hist[1], hist[2], hist[3] = x2, x1, y2, y1
	return y
}

// scalarCascade runs x through every section's scalarSection in turn,
// each section's output feeding the next, exactly as dsp/filter/biquad's
// Chain.ProcessBlock cascades its sections. hists holds one [4]T
// history slot per section and is updated in place.
//
// This is the scalar fallback tier of MultiCoreFilter.Process (for
// chunks shorter than the SIMD width). The package's tests do not call
// it; they compare every tier against their own scalarRef helper.
func scalarCascade[T Sample](coeffs []stage.Coefficients, hists [][4]T, x []T) []T {
	cur := x
	for i, c := range coeffs {
		cur = scalarSection(c, cur, &hists[i])
	}
	return cur
}
