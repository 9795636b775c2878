package cascadeiir

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/cascadeiir/internal/block"
)

// Sample is the set of sample types the filter engine runs over.
type Sample = block.Sample

// Coefficients holds one second-order section's transfer function
// coefficients:
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] + A1*y[n-1] + A2*y[n-2]
//
// B0 is carried explicitly rather than assumed to be 1; the
// recursive-doubling machinery costs nothing extra to support an
// arbitrary B0.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// InitialConditions is the x/y history a section carries into its
// first sample: x[-1], x[-2], y[-1], y[-2].
type InitialConditions struct {
	X1, X2, Y1, Y2 float64
}

// ErrSectionCountMismatch is returned by New when coeffs and inits
// disagree on the number of sections.
var ErrSectionCountMismatch = errors.New("cascadeiir: coefficient and initial-condition section counts differ")

// Validate reports whether c lies in the region the direct-form
// recursion is guaranteed stable for: |a2| < 1 and |a1| < 1+a2. This is
// opt-in — New and Process never call it, matching spec.md's choice not
// to check coefficient stability on the hot path.
func (c Coefficients) Validate() error {
	if math.Abs(c.A2) >= 1 {
		return fmt.Errorf("cascadeiir: |a2|=%g >= 1, section is unstable", math.Abs(c.A2))
	}
	if math.Abs(c.A1) >= 1+c.A2 {
		return fmt.Errorf("cascadeiir: |a1|=%g >= 1+a2=%g, section is unstable", math.Abs(c.A1), 1+c.A2)
	}
	return nil
}
