// Package lane provides the SIMD-width selection and lane-wise
// arithmetic primitives the multi-core filter's pipeline stages are
// built from: [Width] picks M at first use from the running CPU's
// instruction set via the internal/lane/registry kernel-tier registry,
// and [Transpose]/[Blend]/[MulAddInto] are the lane-wise operations the
// original recursive-doubling scheme expresses as vectorclass
// intrinsics (permute8, blend8, mul_add).
package lane
