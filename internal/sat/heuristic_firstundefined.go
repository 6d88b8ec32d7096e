package sat

// FirstUndefinedHeuristic always decides the lowest-indexed undefined
// variable, positively. It has no memory and no tie-breaking: given the
// same clause database and trail, it always produces the same decision,
// which makes it useful for reproducing a run while debugging (spec.md
// §4.F).
type FirstUndefinedHeuristic struct{}

func (h FirstUndefinedHeuristic) OnNewVariable(v VarID)               {}
func (h FirstUndefinedHeuristic) OnRestart()                          {}
func (h FirstUndefinedHeuristic) OnLearning(c *Clause)                {}
func (h FirstUndefinedHeuristic) OnUnitPropagation(c *Clause)         {}
func (h FirstUndefinedHeuristic) OnConflict()                         {}
func (h FirstUndefinedHeuristic) OnNavigatingLiteral(l Literal)       {}
func (h FirstUndefinedHeuristic) OnUnassign(v VarID, lastValue Value) {}

func (h FirstUndefinedHeuristic) ChooseLiteral(s *Solver) (Literal, bool) {
	for v := VarID(1); v <= VarID(s.NumVars()); v++ {
		if s.VarValue(v) == Undefined {
			return PosLiteral(v), true
		}
	}
	return 0, false
}
