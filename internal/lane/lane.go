package lane

import "github.com/cwbudde/cascadeiir/internal/block"

// MulAddInto performs dst[i] += src[i]*scalar, dispatched to the
// currently selected kernel tier (internal/lane/registry). This is the
// lane-wise equivalent of vectorclass's mul_add, used by
// internal/stage's ZIC row accumulations (the recursive-doubling
// passes in IntraBlockRD and InterBlockRD are plain scalar loops).
func MulAddInto[T block.Sample](dst, src []T, scalar T) {
	selectOnce.Do(selectTier)

	switch d := any(dst).(type) {
	case []float32:
		selected.MulAddF32(d, any(src).([]float32), any(scalar).(float32))
	case []float64:
		selected.MulAddF64(d, any(src).([]float64), any(scalar).(float64))
	default:
		panic("lane: unsupported sample type")
	}
}

// Transpose returns the transpose of an M-by-M matrix. PriorPermute and
// PostPermute are both this operation: transposing a row-major reshape
// of L=M*M samples into the lane-wise layout stages operate on, and
// transposing back, are the same matrix transpose (self-inverse),
// mirroring original_source's shared _permuteV used on both sides of
// the pipeline.
func Transpose[T block.Sample](m [][]T) [][]T {
	n := len(m)
	out := make([][]T, n)
	for i := range out {
		out[i] = make([]T, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// PriorPermute reshapes a flat L=M*M sample block (row j holding
// samples j*M..j*M+M-1) into the lane-wise layout every stage operates
// on, where Data[n][j] holds the sample at original index j*M+n.
func PriorPermute[T block.Sample](raw [][]T) [][]T {
	return Transpose(raw)
}

// PostPermute undoes PriorPermute. It is the same operation (matrix
// transpose is self-inverse), mirroring original_source's shared
// _permuteV used on both sides of the pipeline.
func PostPermute[T block.Sample](data [][]T) [][]T {
	return Transpose(data)
}

// Blend shifts row right by one lane, inserting scalar at lane 0. This
// is the Go equivalent of vectorclass's blend8<-1,0,1,...,n-2>, used to
// form a "virtual previous row" from a real row plus a boundary scalar.
func Blend[T block.Sample](row []T, scalar T) []T {
	out := make([]T, len(row))
	out[0] = scalar
	copy(out[1:], row[:len(row)-1])
	return out
}
