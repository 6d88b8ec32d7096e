package sat

// MinisatRestart reproduces Minisat's two-level schedule: an inner geometric
// run of conflict thresholds (growing by InnerFactor per restart), reset to
// InitialInner once it overflows an outer bound, which grows by OuterFactor
// on every such reset (spec.md §4.G).
type MinisatRestart struct {
	InitialInner float64
	InnerFactor  float64
	OuterFactor  float64

	innerLimit float64
	outerBound float64
}

func NewMinisatRestart(initialInner, innerFactor, outerFactor float64) *MinisatRestart {
	return &MinisatRestart{
		InitialInner: initialInner,
		InnerFactor:  innerFactor,
		OuterFactor:  outerFactor,
		innerLimit:   initialInner,
		outerBound:   initialInner,
	}
}

func (r *MinisatRestart) ShouldRestart(conflictsSinceLastRestart int64) bool {
	return float64(conflictsSinceLastRestart) >= r.innerLimit
}

func (r *MinisatRestart) OnRestart() {
	r.innerLimit *= r.InnerFactor
	if r.innerLimit > r.outerBound {
		r.innerLimit = r.InitialInner
		r.outerBound *= r.OuterFactor
	}
}
