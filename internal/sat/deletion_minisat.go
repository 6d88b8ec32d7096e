package sat

// MinisatDeletionStrategy reproduces Minisat's reduceDB: a target learnt
// count that grows by Increment every time it is hit, at which point the
// bottom half by activity (excluding clauses of at most MinLockedSize
// literals, which are kept regardless since short clauses stay useful far
// longer) is dropped (spec.md §4.G; SPEC_FULL.md §12 item 3).
type MinisatDeletionStrategy struct {
	MinLockedSize int
	Increment     float64

	maxLearnts   float64
	learnedCount int
	due          bool
}

func NewMinisatDeletionStrategy(initialMaxLearnts float64, increment float64, minLockedSize int) *MinisatDeletionStrategy {
	return &MinisatDeletionStrategy{
		MinLockedSize: minLockedSize,
		Increment:     increment,
		maxLearnts:    initialMaxLearnts,
	}
}

func (d *MinisatDeletionStrategy) OnNewVariable(v VarID)       {}
func (d *MinisatDeletionStrategy) OnUnitPropagation(c *Clause) {}
func (d *MinisatDeletionStrategy) OnRestart()                  {}

func (d *MinisatDeletionStrategy) OnLearning(c *Clause) {
	d.learnedCount++
	if float64(d.learnedCount) >= d.maxLearnts {
		d.due = true
	}
}

func (d *MinisatDeletionStrategy) ShouldDelete() bool {
	return d.due
}

func (d *MinisatDeletionStrategy) SelectForDeletion(learnts []*Clause) []*Clause {
	d.due = false
	d.maxLearnts += d.Increment

	eligible := make([]*Clause, 0, len(learnts))
	for _, c := range learnts {
		if c.CanBeDeleted() && c.Size() > d.MinLockedSize {
			eligible = append(eligible, c)
		}
	}
	toDrop := deletableBelowFraction(eligible, 0.5)
	d.learnedCount = len(learnts) - len(toDrop)
	return toDrop
}
