package companion

// ImpulseH returns h[0..n] (length n+1), the impulse response of the
// feedback-only recursion h[k] = a1*h[k-1] + a2*h[k-2], seeded h[0]=1,
// h[1]=a1. h[k] is the coefficient of y[-1] in the homogeneous solution
// y[k-1] (see H1H2).
func ImpulseH(a1, a2 float64, n int) []float64 {
	h := make([]float64, n+1)
	h[0] = 1
	if n >= 1 {
		h[1] = a1
	}
	for k := 2; k <= n; k++ {
		h[k] = a1*h[k-1] + a2*h[k-2]
	}
	return h
}

// H1H2 returns h1, h2, each of length m, the weights of the homogeneous
// (zero-input) solution of the feedback recursion:
//
//	y[k] = h1[k]*y[-1] + h2[k]*y[-2]   for k = 0..m-1
//
// h1[k] = h[k+1], h2[k] = a2*h[k], where h is ImpulseH(a1, a2, m).
func H1H2(a1, a2 float64, m int) (h1, h2 []float64) {
	h := ImpulseH(a1, a2, m)
	h1 = make([]float64, m)
	h2 = make([]float64, m)
	for k := 0; k < m; k++ {
		h1[k] = h[k+1]
		h2[k] = a2 * h[k]
	}
	return h1, h2
}

// StepMatrix returns the entries of the 2x2 matrix that advances the
// state (y[-2], y[-1]) by m samples, i.e. maps it to (y[m-2], y[m-1]):
//
//	a = h2[m-1], b = h1[m-1]   (row producing y[m-1])
//	c = h2[m-2], d = h1[m-2]   (row producing y[m-2])
//
// h1, h2 must have length >= m (see H1H2 called with m >= 2).
func StepMatrix(h1, h2 []float64, m int) (a, b, c, d float64) {
	a = h2[m-1]
	b = h1[m-1]
	c = h2[m-2]
	d = h1[m-2]
	return a, b, c, d
}

// Powers returns h22, h12, h21, h11, each of length count: the iterated
// powers of the step matrix whose entries StepMatrix returns as
// (a, b, c, d), where index i holds power i+1. In the (y[-2], y[-1])
// basis that matrix is [[c, d], [a, b]] (first row producing y[m-2],
// second producing y[m-1]), so power 1 is h22=c, h12=d, h21=a, h11=b,
// and each later power is the previous one multiplied by it once more.
// h22/h12 give the new y[-2]-slot value from the old (y[-2], y[-1]),
// h21/h11 the new y[-1]-slot value. IntraBlockRD, InterBlockRD and
// ICCForward read these tables for their recursive-doubling passes and
// row corrections.
func Powers(a, b, c, d float64, count int) (h22, h12, h21, h11 []float64) {
	h22 = make([]float64, count)
	h12 = make([]float64, count)
	h21 = make([]float64, count)
	h11 = make([]float64, count)
	if count == 0 {
		return h22, h12, h21, h11
	}
	h22[0], h12[0], h21[0], h11[0] = c, d, a, b
	for n := 1; n < count; n++ {
		h22[n] = c*h22[n-1] + a*h12[n-1]
		h12[n] = d*h22[n-1] + b*h12[n-1]
		h21[n] = c*h21[n-1] + a*h11[n-1]
		h11[n] = d*h21[n-1] + b*h11[n-1]
	}
	return h22, h12, h21, h11
}
