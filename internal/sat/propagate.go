package sat

// Propagate drains the propagation queue, examining every clause watching a
// newly falsified literal. It returns the first clause found conflicting,
// or nil once the queue empties with no conflict (spec.md §4.D;
// original_source/src/Solver.cpp::propagate).
//
// The watch list for the literal being drained is walked by index rather
// than copied aside and cleared (the teacher's approach in
// rhartert-yass/internal/sat/solver.go's Propagate): Clause.onLiteralFalse
// reports, via Clause.stillWatches, whether it moved its watch away from
// this literal. If it did, updateWatch already swap-removed the entry at
// the current cursor position (see Literal.eraseWatchedClause), so the
// cursor must NOT advance — the swapped-in entry now sits there and needs
// its own turn. If it didn't move (the clause is now unit or conflicting),
// the cursor advances normally.
func (s *Solver) Propagate() *Clause {
	for !s.propQueue.isEmpty() {
		vid := s.propQueue.pop()
		v := s.vars[vid]
		v.unitPropagationStart()
		falseLit := v.unitPropagationFalseLiteral(vid)

		for v.unitPropagationHasNext() {
			c := v.unitPropagationNext()

			if c.onLiteralFalse(falseLit, s.vars, s.assigns) {
				// Watch did not move: c.At(0) is now either the literal to
				// propagate (unit) or the conflicting literal.
				v.unitPropagationAdvance()

				lit0 := c.At(0)
				switch s.assigns[lit0] {
				case False:
					s.propQueue.clear()
					return c
				case Undefined:
					if !s.enqueueLit(lit0, c) {
						s.propQueue.clear()
						return c
					}
					s.heuristic.OnUnitPropagation(c)
					s.deletion.OnUnitPropagation(c)
				}
				// True: already satisfied by another path, nothing to do.
				continue
			}

			if c.stillWatches(falseLit) {
				// "No action": position 0 is true, the clause kept its
				// watch on the falsified literal.
				v.unitPropagationAdvance()
				continue
			}

			// Watch moved away: do not advance, the swapped-in entry (or
			// list shrink) now occupies the current cursor position.
		}
	}
	return nil
}
