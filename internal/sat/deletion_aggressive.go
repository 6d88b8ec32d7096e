package sat

import "sort"

// AggressiveDeletionStrategy prunes the learnt database after every
// restart, keeping only the upper half by activity. It trades a higher
// relearning rate for a much smaller clause database than the other two
// strategies (spec.md §4.G; SPEC_FULL.md §12 item 3).
type AggressiveDeletionStrategy struct {
	pendingRestart bool
}

func NewAggressiveDeletionStrategy() *AggressiveDeletionStrategy {
	return &AggressiveDeletionStrategy{}
}

func (d *AggressiveDeletionStrategy) OnNewVariable(v VarID)       {}
func (d *AggressiveDeletionStrategy) OnLearning(c *Clause)        {}
func (d *AggressiveDeletionStrategy) OnUnitPropagation(c *Clause) {}

func (d *AggressiveDeletionStrategy) OnRestart() {
	d.pendingRestart = true
}

func (d *AggressiveDeletionStrategy) ShouldDelete() bool {
	if d.pendingRestart {
		d.pendingRestart = false
		return true
	}
	return false
}

func (d *AggressiveDeletionStrategy) SelectForDeletion(learnts []*Clause) []*Clause {
	return deletableBelowFraction(learnts, 0.5)
}

// deletableBelowFraction returns the lowest-activity fraction of the
// deletable (CanBeDeleted) clauses in learnts, without mutating learnts.
func deletableBelowFraction(learnts []*Clause, fraction float64) []*Clause {
	candidates := make([]*Clause, 0, len(learnts))
	for _, c := range learnts {
		if c.CanBeDeleted() {
			candidates = append(candidates, c)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Activity() < candidates[j].Activity()
	})
	n := int(float64(len(candidates)) * fraction)
	return candidates[:n]
}
