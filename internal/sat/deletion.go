package sat

// DeletionStrategy decides when and which learned clauses get reclaimed
// (spec.md §4.G). Like Heuristic, it is notified of the same learning/
// restart/propagation/new-variable events so it can keep its own
// bookkeeping (e.g. a per-clause activity separate from variable activity)
// without the solver exposing its internals.
type DeletionStrategy interface {
	OnNewVariable(v VarID)
	OnLearning(c *Clause)
	OnUnitPropagation(c *Clause)
	OnRestart()

	// ShouldDelete reports whether the solver should run a deletion pass
	// right now (after OnRestart was called for this restart).
	ShouldDelete() bool

	// SelectForDeletion returns, from learnts, the subset that should be
	// removed: every clause with CanBeDeleted() false must never appear in
	// the result (spec.md §3, §8 property 6).
	SelectForDeletion(learnts []*Clause) []*Clause
}
