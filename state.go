package cascadeiir

// State returns a snapshot of every section's x/y history, suitable
// for resuming a later, independent sequence of Process calls. This
// mirrors dsp/filter/biquad's Chain.State()/SetState() pair and the
// original C++ engine's internal post_inits refresh, exposed here
// since nothing about the recursive-doubling scheme requires it to
// stay private.
func (f *MultiCoreFilter[T]) State() []InitialConditions {
	x2, x1, y2, y1 := f.cas.State()
	states := make([]InitialConditions, len(x2))
	for i := range states {
		states[i] = InitialConditions{
			X1: float64(x1[i]),
			X2: float64(x2[i]),
			Y1: float64(y1[i]),
			Y2: float64(y2[i]),
		}
	}
	return states
}

// SetState restores a previously captured state. len(states) must
// equal NumSections().
func (f *MultiCoreFilter[T]) SetState(states []InitialConditions) {
	n := len(states)
	x2 := make([]T, n)
	x1 := make([]T, n)
	y2 := make([]T, n)
	y1 := make([]T, n)
	for i, s := range states {
		x2[i], x1[i] = T(s.X2), T(s.X1)
		y2[i], y1[i] = T(s.Y2), T(s.Y1)
	}
	f.cas.SetState(x2, x1, y2, y1)
}
