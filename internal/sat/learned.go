package sat

// learnedInfo carries the bookkeeping specific to learned clauses: an
// activity score used by deletion strategies, and a canBeDeleted flag that
// is false for clauses introduced as commitments through the incremental
// API (e.g. blocking clauses added by the minimization driver), which must
// survive every deletion strategy (spec.md §3, §8 property 6).
type learnedInfo struct {
	activity     float64
	canBeDeleted bool
}

// NewLearnedClause allocates a clause tagged as learned, with activity 0
// and canBeDeleted true. Like NewClause it must be attached before use.
func NewLearnedClause(literals []Literal) *Clause {
	c := NewClause(literals)
	c.learned = &learnedInfo{canBeDeleted: true}
	return c
}

// IsLearned reports whether the clause was produced by conflict analysis,
// the HCC checker, or the minimization driver, as opposed to being an
// original program/input clause.
func (c *Clause) IsLearned() bool {
	return c.learned != nil
}

// Activity returns the clause's activity score, or 0 for non-learned
// clauses.
func (c *Clause) Activity() float64 {
	if c.learned == nil {
		return 0
	}
	return c.learned.activity
}

// BumpActivity increases the clause's activity by amount. No-op on
// non-learned clauses.
func (c *Clause) BumpActivity(amount float64) {
	if c.learned != nil {
		c.learned.activity += amount
	}
}

// RescaleActivity multiplies the clause's activity by factor, used to keep
// activities bounded instead of applying a per-conflict decay directly
// (spec.md §4.G).
func (c *Clause) RescaleActivity(factor float64) {
	if c.learned != nil {
		c.learned.activity *= factor
	}
}

// CanBeDeleted reports whether a deletion strategy is allowed to remove
// this clause. Always false for non-learned clauses.
func (c *Clause) CanBeDeleted() bool {
	return c.learned != nil && c.learned.canBeDeleted
}

// SetCanBeDeleted marks a learned clause as (un)removable by deletion
// strategies. Used by the minimization driver to "commit" a blocking
// clause (spec.md §3, §4.J).
func (c *Clause) SetCanBeDeleted(v bool) {
	if c.learned != nil {
		c.learned.canBeDeleted = v
	}
}
