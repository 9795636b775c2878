package cascadeiir

import "github.com/cwbudde/cascadeiir/internal/stage"

// vectorSection runs the same direct-form recursion as scalarSection,
// grouped into chunks of width samples. A single-section IIR recursion
// cannot be parallelized across lanes without the recursive-doubling
// scheme (internal/stage), which only pays for itself at the full
// L=M*M block granularity; below that this generalizes
// dsp/filter/biquad's processBlockUnrolled2 (fixed 2-way unroll) to an
// arbitrary width, trading a flatter loop body for whatever ILP the
// compiler can extract, rather than true lane independence.
func vectorSection[T Sample](c stage.Coefficients, x []T, hist *[4]T, width int) []T {
	b0, b1, b2 := T(c.B0), T(c.B1), T(c.B2)
	a1, a2 := T(c.A1), T(c.A2)
	x2, x1, y2, y1 := hist[0], hist[1], hist[2], hist[3]

	y := make([]T, len(x))
	n := len(x)
	i := 0
	for ; i+width <= n; i += width {
		for k := 0; k < width; k++ {
			xn := x[i+k]
			yn := b0*xn + b1*x1 + b2*x2 + a1*y1 + a2*y2
			y[i+k] = yn
			x2, x1 = x1, xn
			y2, y1 = y1, yn
		}
	}
	for ; i < n; i++ {
		xn := x[i]
		yn := b0*xn + b1*x1 + b2*x2 + a1*y1 + a2*y2
		y[i] = yn
		x2, x1 = x1, xn
		y2, y1 = y1, yn
	}

	hist[0], hist[1], hist[2], hist[3] = x2, x1, y2, y1
	return y
}

// vectorCascade is vectorSection cascaded across every section, the
// middle driver tier for chunks at least width samples long but
// shorter than a full L=width*width block.
func vectorCascade[T Sample](coeffs []stage.Coefficients, hists [][4]T, x []T, width int) []T {
	cur := x
	for i, c := range coeffs {
		cur = vectorSection(c, cur, &hists[i], width)
	}
	return cur
}
