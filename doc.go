// Package cascadeiir implements a cascaded second-order-section (biquad)
// IIR filter engine with a SIMD-width-aware, recursive-doubling
// parallel execution path for throughput at scale, alongside scalar and
// M-sample-grouped serial fallbacks for shorter inputs.
//
// A MultiCoreFilter cascades N biquad sections, each described by its
// own Coefficients, and processes float32 or float64 streams with state
// (x/y history) that carries across successive Process calls.
package cascadeiir
