package sat

// Heuristic selects the next decision literal and is notified of the
// solver's learning/restart/conflict events so it can adapt its scoring.
// Concrete variants (BerkminHeuristic, FirstUndefinedHeuristic) satisfy
// this interface rather than subclassing a base class, per spec.md §9's
// Design Notes ("pluggable strategies via inheritance become tagged
// variants or trait objects").
type Heuristic interface {
	// ChooseLiteral returns the next undefined literal to decide, and ok
	// is false if no undefined literals remain (the solver then declares a
	// candidate model).
	ChooseLiteral(s *Solver) (lit Literal, ok bool)

	OnNewVariable(v VarID)
	OnRestart()
	OnLearning(c *Clause)
	OnUnitPropagation(c *Clause)
	OnConflict()

	// OnNavigatingLiteral satisfies LearningVisitor: the analyzer calls
	// conflictClause.OnLearning(heuristic) while resolving, which bumps the
	// score of every literal's variable it touches (spec.md §4.E step 1).
	OnNavigatingLiteral(l Literal)

	// OnUnassign is called once per literal undone by a backjump, in
	// most-recent-first order, so the heuristic can make the variable a
	// candidate again (and, for phase-saving heuristics, remember
	// lastValue as the polarity to try next time).
	OnUnassign(v VarID, lastValue Value)
}
