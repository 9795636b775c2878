// Package companion precomputes the scalar tables a cascaded biquad
// section needs to run the zero-initial-condition + recursive-doubling
// scheme: impulse-response vectors and companion matrix powers. ZIC
// input weights are not precomputed here; ZIC applies b0, b1, b2
// directly.
//
// Every table here is derived from a single second-order recursion
//
//	y[n] = b0*x[n] + b1*x[n-1] + b2*x[n-2] + a1*y[n-1] + a2*y[n-2]
//
// The feedback half of that recursion is equivalent to iterating the
// 2x2 companion matrix
//
//	C = [ a1  1 ]
//	    [ a2  0 ]
//
// on the state vector (y[n-1], y[n-2]). All functions in this package
// work in float64 regardless of the sample type the filter ultimately
// runs at, matching how the teacher's biquad coefficients are always
// float64 even when processing float32 buffers.
package companion
