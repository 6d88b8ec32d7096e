package sat

// undefinedLevel is the level of a variable that is currently unassigned:
// its "decision level" is, conceptually, infinite (spec.md §3), stored as
// -1.
const undefinedLevel = -1

// variable holds the per-variable assignment state plus the two
// watched-clause lists required by the two-watched-literal scheme: one for
// clauses watching the variable's positive literal, one for clauses
// watching its negative literal (spec.md §3, §4.A).
type variable struct {
	value     Value
	level     int
	implicant *Clause // nil if the assignment was a decision or a toplevel fact

	// watchedBy[0] lists clauses watching the variable's positive literal;
	// watchedBy[1] lists clauses watching its negative literal. Lists are
	// unordered and must never contain duplicates.
	watchedBy [2][]*Clause

	// propCursor is the index-based cursor used while draining this
	// variable's watch list during BCP (unitPropagationStart/HasNext/Next).
	propCursor int
	propSign   int // which of watchedBy[...] is currently being drained
}

func newVariable() *variable {
	return &variable{value: Undefined, level: undefinedLevel}
}

func (v *variable) isTrue() bool      { return v.value == True }
func (v *variable) isFalse() bool     { return v.value == False }
func (v *variable) isUndefined() bool { return v.value == Undefined }

// addWatchedClause appends c to the watch list of literal l's variable,
// under the polarity of l. O(1).
func (l Literal) addWatchedClause(vars []*variable, c *Clause) {
	v := vars[l.Var()]
	v.watchedBy[l.sign()] = append(v.watchedBy[l.sign()], c)
}

// eraseWatchedClause removes c from l's watch list by pointer identity,
// swapping in the last element to keep the removal O(1) once found. It is
// used when a clause's watch is about to move away from l (see
// Clause.updateWatch): the caller is guaranteed that c is present exactly
// once in the list.
func (l Literal) eraseWatchedClause(vars []*variable, c *Clause) {
	v := vars[l.Var()]
	ws := v.watchedBy[l.sign()]
	for i, w := range ws {
		if w == c {
			last := len(ws) - 1
			ws[i] = ws[last]
			ws = ws[:last]
			v.watchedBy[l.sign()] = ws
			return
		}
	}
}

// findAndEraseWatchedClause is the detach-time variant of
// eraseWatchedClause: a full linear search with no assumption that the
// clause is still attached to this exact literal's current watch position.
// Used by Clause.DetachClause.
func (l Literal) findAndEraseWatchedClause(vars []*variable, c *Clause) {
	l.eraseWatchedClause(vars, c)
}

// unitPropagationStart begins a drain of the watch list for the literal
// that just became false (sign 0 if the variable was assigned False, 1 if
// it was assigned True — i.e. the occurrence whose polarity disagrees with
// the new value).
func (v *variable) unitPropagationStart() {
	v.propSign = 0
	if v.value == True {
		v.propSign = 1
	}
	v.propCursor = 0
}

func (v *variable) unitPropagationHasNext() bool {
	return v.propCursor < len(v.watchedBy[v.propSign])
}

// unitPropagationNext returns the next clause to examine without advancing
// the cursor: the caller (the propagator) advances it explicitly only when
// the clause did not move away from this watch list, since a successful
// watch move already swap-removed the entry at the current cursor position
// (spec.md §4.D).
func (v *variable) unitPropagationNext() *Clause {
	return v.watchedBy[v.propSign][v.propCursor]
}

func (v *variable) unitPropagationAdvance() {
	v.propCursor++
}

// unitPropagationFalseLiteral returns the literal that was falsified by
// this variable's current assignment, i.e. the one whose watch list is
// being drained.
func (v *variable) unitPropagationFalseLiteral(id VarID) Literal {
	if v.propSign == 0 {
		return PosLiteral(id)
	}
	return NegLiteral(id)
}
