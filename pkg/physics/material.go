package physics

import "math"

// CombineRule decides how the coefficients of two touching bodies are merged.
// When the bodies disagree, the rule with the higher value wins.
type CombineRule int

const (
	CombineAverage CombineRule = iota
	CombineMin
	CombineMultiply
	CombineMax
)

// Combine merges two coefficients according to the rule
func (r CombineRule) Combine(a, b float64) float64 {
	switch r {
	case CombineMin:
		return math.Min(a, b)
	case CombineMultiply:
		return a * b
	case CombineMax:
		return math.Max(a, b)
	default:
		return (a + b) / 2
	}
}

// Restitution presets
const (
	PerfectlyInelastic = 0.0
	PerfectlyElastic   = 1.0
)

// Material describes the surface response of a body
type Material struct {
	Friction           float64
	FrictionCombine    CombineRule
	Restitution        float64
	RestitutionCombine CombineRule
}

// combineMaterials returns the friction and restitution used for a contact
func combineMaterials(a, b Material) (friction, restitution float64) {
	fr := a.FrictionCombine
	if b.FrictionCombine > fr {
		fr = b.FrictionCombine
	}
	rr := a.RestitutionCombine
	if b.RestitutionCombine > rr {
		rr = b.RestitutionCombine
	}
	return fr.Combine(a.Friction, b.Friction), rr.Combine(a.Restitution, b.Restitution)
}
