package component

// AllergyComponent is the per-bee allergy meter
// Value is kept within [0, Max] by Add
type AllergyComponent struct {
	Value       float64
	Max         float64
	Multiplier  float64 // Buildup scale near flower heads
	Sensitivity float64
}

// Percentage returns Value as a fraction of Max in [0, 1]
func (a AllergyComponent) Percentage() float64 {
	if a.Max <= 0 {
		return 0
	}
	return a.Value / a.Max
}

// ShouldSneeze reports whether the meter reached threshold
func (a AllergyComponent) ShouldSneeze(threshold float64) bool {
	return a.Value >= threshold
}

// Add applies delta and clamps to [0, Max]
func (a *AllergyComponent) Add(delta float64) {
	a.Value += delta
	if a.Value > a.Max {
		a.Value = a.Max
	}
	if a.Value < 0 {
		a.Value = 0
	}
}
