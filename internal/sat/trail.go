package sat

// trail is the ordered list of assigned literals, partitioned by decision
// level. unrollVector[L] records the trail length when level L was opened,
// so unrolling to level L truncates the trail back to the boundary of level
// L+1, keeping the assignments of level L itself (spec.md §3, §4.C).
type trail struct {
	literals     []Literal
	unrollVector []int
}

func newTrail() *trail {
	return &trail{unrollVector: []int{0}}
}

func (t *trail) size() int { return len(t.literals) }

func (t *trail) currentLevel() int { return len(t.unrollVector) - 1 }

// openLevel starts a new decision level, recording the current trail size
// as its boundary.
func (t *trail) openLevel() {
	t.unrollVector = append(t.unrollVector, len(t.literals))
}

// push appends an assigned literal to the trail.
func (t *trail) push(l Literal) {
	t.literals = append(t.literals, l)
}

// at returns the literal assigned at trail position i.
func (t *trail) at(i int) Literal { return t.literals[i] }

// last returns the most recently assigned literal.
func (t *trail) last() Literal { return t.literals[len(t.literals)-1] }

// popLast removes and returns the most recently assigned literal.
func (t *trail) popLast() Literal {
	l := t.literals[len(t.literals)-1]
	t.literals = t.literals[:len(t.literals)-1]
	return l
}

// unroll undoes every literal assigned above level (it truncates the trail
// back to the boundary of level+1), returning the literals that were
// undone in most-recent-first order via onUndo, and leaves unrollVector
// with exactly level+1 entries (spec.md §4.C). level must be below the
// current level.
func (t *trail) unroll(level int, onUndo func(Literal)) {
	boundary := t.unrollVector[level+1]
	for len(t.literals) > boundary {
		onUndo(t.popLast())
	}
	t.unrollVector = t.unrollVector[:level+1]
}
