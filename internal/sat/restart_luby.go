package sat

// LubyRestart schedules restarts at unitRun * luby(k) conflicts for the
// k-th restart, where luby is the standard Luby sequence
// (1,1,2,1,1,2,4,1,1,2,1,1,2,4,8,...). This is the schedule Minisat-family
// solvers default to (spec.md §4.G).
type LubyRestart struct {
	UnitRun float64
	count   int64
}

func NewLubyRestart(unitRun float64) *LubyRestart {
	return &LubyRestart{UnitRun: unitRun}
}

func (r *LubyRestart) ShouldRestart(conflictsSinceLastRestart int64) bool {
	return float64(conflictsSinceLastRestart) >= r.UnitRun*luby(r.count)
}

func (r *LubyRestart) OnRestart() {
	r.count++
}

// luby returns the i-th (0-indexed) term of the Luby sequence.
func luby(i int64) float64 {
	// Find the finite sequence of powers of two that i belongs to.
	var size, seq int64 = 1, 0
	for size < i+1 {
		seq++
		size = 2*size + 1
	}
	for size-1 != i {
		size = (size - 1) / 2
		seq--
		i = i % size
	}
	return pow2(seq)
}

func pow2(n int64) float64 {
	r := 1.0
	for j := int64(0); j < n; j++ {
		r *= 2
	}
	return r
}
