package sat

import "math/rand"

// UndefinedCollector receives the undefined variables discovered while a
// clause checks whether it is currently unsatisfied (spec.md §4.B,
// checkUnsatisfiedAndOptimize).
type UndefinedCollector interface {
	CollectUndefined(v VarID)
}

// LearningVisitor is called back once per literal when a clause is
// "navigated" during conflict analysis (spec.md §4.B, onLearning), letting
// the analyzer bump activities without reaching into Clause internals.
type LearningVisitor interface {
	OnNavigatingLiteral(l Literal)
}

// Clause is a disjunction of two or more literals, attached to the solver
// via exactly two watched positions: literals[0] and literals[1]
// (spec.md §3). It is always referenced by pointer: watch lists record
// clauses by pointer identity (Literal.eraseWatchedClause), so clauses must
// never be copied (spec.md §3, "Copy construction is forbidden").
type Clause struct {
	literals []Literal

	// lastSwapIndex is the rotating cursor used by updateWatch to spread
	// the cost of repeated misses across the clause (spec.md §4.B). It is
	// always in [1, len(literals)-1].
	lastSwapIndex int

	// learned is non-nil for clauses produced by conflict analysis, the HCC
	// checker's loop formulas, or the minimization driver's blocking
	// clauses. Rather than a LearnedClause subtype (spec.md §3 describes
	// one, but spec.md §9's Design Notes push inheritance-shaped
	// distinctions toward tagged variants; a teacher-style status field
	// applies the same idea here, see rhartert-yass/sat/clauses.go's
	// statusMask field), a single Clause type carries this optional field.
	learned *learnedInfo
}

// NewClause allocates a clause over the given literals. The clause is not
// yet attached: callers must invoke attachClause (or attachClause(first,
// second) to pick explicit watches) before it participates in propagation.
// literals must have length >= 2; unit and empty clauses are the caller's
// responsibility to handle before reaching this point (spec.md §3).
func NewClause(literals []Literal) *Clause {
	lits := make([]Literal, len(literals))
	copy(lits, literals)
	return &Clause{literals: lits, lastSwapIndex: 1}
}

// Literals returns the clause's literals. Callers must not retain the
// returned slice across a watch update.
func (c *Clause) Literals() []Literal { return c.literals }

// At returns the literal at position idx.
func (c *Clause) At(idx int) Literal { return c.literals[idx] }

// Size returns the number of literals in the clause.
func (c *Clause) Size() int { return len(c.literals) }

func (c *Clause) swap(i, j int) {
	c.literals[i], c.literals[j] = c.literals[j], c.literals[i]
}

// attachFirstWatch registers the clause in the watch list of literals[0]'s
// variable.
func (c *Clause) attachFirstWatch(vars []*variable) {
	c.literals[0].addWatchedClause(vars, c)
}

func (c *Clause) attachSecondWatch(vars []*variable) {
	c.literals[1].addWatchedClause(vars, c)
}

func (c *Clause) detachSecondWatch(vars []*variable) {
	c.literals[1].eraseWatchedClause(vars, c)
}

// AttachClause attaches the clause with watches at its current positions 0
// and 1 (spec.md §4.B).
func (c *Clause) AttachClause(vars []*variable) {
	c.attachFirstWatch(vars)
	c.attachSecondWatch(vars)
}

// AttachClauseAt attaches the clause after moving the literals currently at
// index first/second into positions 0/1 (used by the conflict analyzer to
// watch the asserting literal and the backjump-level literal, and by
// learned-clause construction to watch the two most-recently-assigned
// literals). second == 0 is handled explicitly since swapping position 1
// into 0 first would otherwise move the very literal we are about to place
// at 1 (spec.md §4.B).
func (c *Clause) AttachClauseAt(vars []*variable, first, second int) {
	c.swap(0, first)
	if second == 0 {
		c.swap(1, first)
	} else {
		c.swap(1, second)
	}
	c.AttachClause(vars)
}

// AttachClauseRandomized attaches the clause with a uniform choice of two
// distinct watch positions, used when the front end did not pick watches
// itself (spec.md §4.B). rng is the solver's fixed-seed PRNG, keeping runs
// reproducible (spec.md §9).
func (c *Clause) AttachClauseRandomized(vars []*variable, rng *rand.Rand) {
	first := rng.Intn(len(c.literals))
	second := rng.Intn(len(c.literals) - 1)
	if second >= first {
		second++
	}
	c.AttachClauseAt(vars, first, second)
}

// DetachClause removes the clause from both of its watch lists.
func (c *Clause) DetachClause(vars []*variable) {
	c.literals[0].findAndEraseWatchedClause(vars, c)
	c.literals[1].findAndEraseWatchedClause(vars, c)
}

// updateWatch scans literals[lastSwapIndex+1:] then
// literals[2:lastSwapIndex+1] for the first non-false literal, moving the position-1 watch there. It
// never touches position 0: per spec.md §9's Open Question, only
// onLiteralFalse's initial swap ever moves the position-0 watch, and that
// asymmetry is load-bearing for the ordering of propagated literals and
// must not be "fixed". Returns true if a new watch was found.
func (c *Clause) updateWatch(vars []*variable, values []Value) bool {
	n := len(c.literals)
	for i := c.lastSwapIndex + 1; i < n; i++ {
		if values[c.literals[i]] != False {
			c.detachSecondWatch(vars)
			c.lastSwapIndex = i
			c.swap(1, i)
			c.attachSecondWatch(vars)
			return true
		}
	}
	for i := 2; i <= c.lastSwapIndex; i++ {
		if values[c.literals[i]] != False {
			c.detachSecondWatch(vars)
			c.lastSwapIndex = i
			c.swap(1, i)
			c.attachSecondWatch(vars)
			return true
		}
	}
	return false
}

// onLiteralFalse is called by the propagator when l (currently false)
// watches this clause. If l sits at position 0 it is first moved to
// position 1 (the "watched-is-at-1" convention expected by updateWatch);
// then, if position 0 is already true, the clause needs no action.
// Otherwise an attempt is made to find a replacement watch. Returns true
// iff the clause is now unit (position 0 must be propagated true) or
// conflicting (position 0 is false) — in both cases position 0 holds the
// literal to examine next (spec.md §4.B).
func (c *Clause) onLiteralFalse(l Literal, vars []*variable, values []Value) bool {
	if l == c.literals[0] {
		c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
	}

	if values[c.literals[0]] == True {
		return false
	}

	return !c.updateWatch(vars, values)
}

// stillWatches reports whether l is still the clause's position-1 watch.
// The propagator uses this (rather than a second return value from
// onLiteralFalse, which the spec fixes at a single bool) to decide whether
// to advance its watch-list cursor or reprocess the swapped-in entry
// (spec.md §4.D).
func (c *Clause) stillWatches(l Literal) bool {
	return c.literals[1] == l
}

// CheckUnsatisfiedAndOptimize returns true iff no literal in the clause is
// currently true. While scanning, every undefined variable encountered is
// reported to collector, and a true literal found past position 0 is
// opportunistically moved to a position checked early, so a later call
// short-circuits: from position 1 it is swapped into position 0, from any
// other position into the last one, which is checked first. The watched
// positions 0 and 1 only ever exchange literals with each other
// (spec.md §4.B; original_source/src/Clause.h).
func (c *Clause) CheckUnsatisfiedAndOptimize(values []Value, collector UndefinedCollector) bool {
	n := len(c.literals)

	last := c.literals[n-1]
	if values[last] == True {
		return false
	}
	if values[last] == Undefined {
		collector.CollectUndefined(last.Var())
	}

	if values[c.literals[0]] == True {
		return false
	}
	if values[c.literals[0]] == Undefined {
		collector.CollectUndefined(c.literals[0].Var())
	}

	size := n - 1
	for i := 1; i < size; i++ {
		lit := c.literals[i]
		if values[lit] == True {
			if i == 1 {
				c.swap(0, 1)
			} else {
				c.swap(i, size)
			}
			return false
		}
		if values[lit] == Undefined {
			collector.CollectUndefined(lit.Var())
		}
	}

	return true
}

// OnLearning calls strategy.OnNavigatingLiteral for every literal in the
// clause, in order, without exposing the underlying slice (spec.md §4.B
// and §9: the friend-class coupling between Clause and the analyzer in the
// original source is replaced by this visitor).
func (c *Clause) OnLearning(strategy LearningVisitor) {
	for _, l := range c.literals {
		strategy.OnNavigatingLiteral(l)
	}
}
