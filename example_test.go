package cascadeiir_test

import (
	"fmt"

	"github.com/cwbudde/cascadeiir"
)

func ExampleMultiCoreFilter_Process() {
	f, err := cascadeiir.New[float64](
		[]cascadeiir.Coefficients{{B0: 1, B1: 0, B2: 0, A1: 0.5, A2: 0}},
		[]cascadeiir.InitialConditions{{}},
	)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	x := []float64{1, 0, 0, 0}
	y := f.Process(nil, x)
	for i, v := range y {
		fmt.Printf("y[%d] = %.6f\n", i, v)
	}
	// Output:
	// y[0] = 1.000000
	// y[1] = 0.500000
	// y[2] = 0.250000
	// y[3] = 0.125000
}
