package cascadeiir_test

import (
	"math"
	"testing"

	"github.com/cwbudde/cascadeiir"
	"github.com/cwbudde/cascadeiir/internal/lane"
)

func benchInput(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(float64(i) * 0.13)
	}
	return x
}

// BenchmarkProcess_Scalar, _Vector and _MultiCore drive the same filter
// at input lengths chosen to land in each of Process's three tiers,
// following dsp/filter/biquad's section_bench_test.go convention of
// one benchmark per code path rather than a single parametrized one.
func BenchmarkProcess_Scalar(b *testing.B) {
	benchmarkProcess(b, lane.Width[float64]()-1) // < M
}

func BenchmarkProcess_Vector(b *testing.B) {
	m := lane.Width[float64]()
	benchmarkProcess(b, m*(m-1)) // a multiple of M, below L = M*M
}

func BenchmarkProcess_MultiCore(b *testing.B) {
	benchmarkProcess(b, 1<<16)
}

func benchmarkProcess(b *testing.B, n int) {
	coeffs := testCoeffs()
	f, err := cascadeiir.New[float64](coeffs, zeroInits(len(coeffs)))
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	defer f.Close()

	x := benchInput(n)
	var dst []float64

	b.SetBytes(int64(n * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst = f.Process(dst, x)
	}
}
