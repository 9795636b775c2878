package lane

import "testing"

func TestWidthIsPowerOfTwoAndWithinSpecRange(t *testing.T) {
	w32 := Width[float32]()
	w64 := Width[float64]()

	validF32 := map[int]bool{4: true, 8: true, 16: true}
	validF64 := map[int]bool{2: true, 4: true, 8: true}

	if !validF32[w32] {
		t.Fatalf("Width[float32]() = %d, want one of 4/8/16", w32)
	}
	if !validF64[w64] {
		t.Fatalf("Width[float64]() = %d, want one of 2/4/8", w64)
	}
	if w32 != 2*w64 {
		t.Fatalf("Width[float32]()=%d should be exactly 2x Width[float64]()=%d", w32, w64)
	}
}

func TestTransposeIsSelfInverse(t *testing.T) {
	m := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	once := Transpose(m)
	twice := Transpose(once)

	for i := range m {
		for j := range m[i] {
			if twice[i][j] != m[i][j] {
				t.Fatalf("Transpose(Transpose(m))[%d][%d] = %v, want %v", i, j, twice[i][j], m[i][j])
			}
		}
	}

	// spot-check the transposed layout itself.
	if once[0][1] != 4 || once[1][0] != 2 {
		t.Fatalf("Transpose produced wrong layout: %v", once)
	}
}

func TestBlendShiftsAndInsertsScalar(t *testing.T) {
	row := []float64{10, 20, 30, 40}
	out := Blend(row, 99.0)
	want := []float64{99, 10, 20, 30}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("Blend(row, 99)[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestMulAddIntoAccumulates(t *testing.T) {
	dst := []float64{1, 2, 3, 4}
	src := []float64{10, 20, 30, 40}
	MulAddInto(dst, src, 2.0)
	want := []float64{21, 42, 63, 84}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("MulAddInto dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}
