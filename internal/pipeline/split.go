package pipeline

import "github.com/cwbudde/cascadeiir/internal/block"

// Split is the SourceSplitter node: it reshapes a flat run of
// nBlocks*m*m samples into nBlocks row-major M-by-M matrices, one per
// block, row j of block t holding the m samples at flat offset
// t*m*m + j*m .. t*m*m + j*m + m.
func Split[T block.Sample](x []T, m int) [][][]T {
	l := m * m
	n := len(x) / l
	blocks := make([][][]T, n)
	for t := 0; t < n; t++ {
		raw := make([][]T, m)
		base := t * l
		for j := 0; j < m; j++ {
			raw[j] = append([]T(nil), x[base+j*m:base+j*m+m]...)
		}
		blocks[t] = raw
	}
	return blocks
}

// Join is Split's inverse: it flattens nBlocks row-major M-by-M
// matrices back into a single run of samples.
func Join[T block.Sample](blocks [][][]T, m int, dst []T) []T {
	l := m * m
	for t, raw := range blocks {
		base := t * l
		for j := 0; j < m; j++ {
			copy(dst[base+j*m:base+j*m+m], raw[j])
		}
	}
	return dst
}
