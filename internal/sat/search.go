package sat

// ModelChecker validates a candidate model once the solver has no more
// undefined literals (spec.md §4.I). A rejecting checker returns a loop
// formula: a clause every one of whose literals is currently false (since
// it negates the unfounded atom, itself true, and a set of witnesses each
// also currently true), i.e. a clause in exactly the shape BCP would hand
// Analyze as a conflict. internal/hcc's component checker is the concrete
// implementation, kept out of this package so the core CDCL engine does not
// depend on the disjunctive-program layer built on top of it.
type ModelChecker interface {
	CheckModel(s *Solver) (loopFormula []Literal, ok bool)
}

// SetModelChecker installs the HCC (or other) model checker consulted once
// per candidate model. A nil checker (the default) accepts every candidate
// immediately, matching a solver used in plain-CNF mode.
func (s *Solver) SetModelChecker(checker ModelChecker) {
	s.modelChecker = checker
}

// Solve runs the search loop described in spec.md §4.H: assumptions are
// decided first (any conflict derived purely from them yields
// StatusUnsatisfiable, i.e. INCOHERENT per spec.md §6); then decisions,
// propagation, conflict analysis, restarts and clause deletion interleave
// until either no undefined literal remains (and the model checker, if
// any, approves) or the top level itself conflicts.
func (s *Solver) Solve(assumptions []Literal) Status {
	if s.unsat {
		return StatusUnsatisfiable
	}
	s.searchStarted = true

	if conflict := s.Propagate(); conflict != nil {
		s.unsat = true
		return StatusUnsatisfiable
	}

	for {
		conflict := s.Propagate()
		for conflict != nil {
			s.Stats.Conflicts++
			s.conflictsSinceRestart++

			if s.decisionLevel() == 0 {
				s.unsat = true
				return StatusUnsatisfiable
			}

			learned, backjump := s.Analyze(conflict)
			s.decayClauseActivity()
			s.heuristic.OnConflict()
			s.cancelUntil(backjump)

			c := NewLearnedClause(learned)
			s.attachLearnt(c)
			s.Stats.LearnedClauses++
			if c.Size() >= 2 {
				// Guaranteed unit by construction: every literal besides
				// the UIP sits at a level <= backjump and therefore
				// remains assigned false after cancelUntil.
				s.enqueueLit(c.At(0), c)
			}

			conflict = s.Propagate()
		}

		if s.interrupted {
			s.interrupted = false
			return StatusUnknown
		}

		if s.restart.ShouldRestart(s.conflictsSinceRestart) {
			s.doRestart()
			continue
		}

		// Establish assumptions before any free decision, and re-establish
		// any that a backjump or restart undid: an assumption rendered
		// false by propagation means the formula together with the
		// assumptions is unsatisfiable (spec.md §4.H: conflicts derived
		// purely from assumptions yield INCOHERENT).
		if l, failed, pending := s.nextAssumption(assumptions); failed {
			s.cancelUntil(0)
			return StatusUnsatisfiable
		} else if pending {
			s.assume(l)
			continue
		}

		lit, ok := s.heuristic.ChooseLiteral(s)
		if !ok {
			if s.modelChecker == nil {
				return StatusSatisfiable
			}
			loopFormula, approved := s.modelChecker.CheckModel(s)
			if approved {
				return StatusSatisfiable
			}
			s.Stats.LoopFormulas++

			// The loop formula is, by construction, false under the current
			// (complete) assignment: it negates the unfounded atom (itself
			// true) and a set of witnesses each also currently true. Route
			// it through the same first-UIP machinery as a BCP conflict
			// (spec.md §4.I: "as if it were the result of a conflict
			// analysis") rather than attaching it as-is, since neither its
			// backjump level nor its asserting literal are known up front.
			// Unlike a BCP conflict it is not guaranteed to contain a
			// literal of the current decision level, so first unroll to the
			// highest level it does mention; Analyze requires exactly that
			// clause shape.
			maxLevel := 0
			for _, l := range loopFormula {
				if lv := s.vars[l.Var()].level; lv > maxLevel {
					maxLevel = lv
				}
			}
			if maxLevel == 0 {
				s.unsat = true
				return StatusUnsatisfiable
			}
			s.cancelUntil(maxLevel)
			learned, backjump := s.Analyze(NewClause(loopFormula))
			s.decayClauseActivity()
			s.heuristic.OnConflict()
			s.cancelUntil(backjump)

			c := NewLearnedClause(learned)
			s.attachLearnt(c)
			s.Stats.LearnedClauses++
			if c.Size() >= 2 {
				s.enqueueLit(c.At(0), c)
			}
			continue
		}
		s.assume(lit)
	}
}

// doRestart performs one full restart (spec.md §4.G): backjump to level 0
// with the learned-clause database preserved, advance every strategy's
// restart schedule, and give the deletion strategy its pruning window.
// Used both by the search loop's restart branch and by
// AddClauseFromModelAndRestart, which the C++ names a restart distinct
// from a bare unroll.
func (s *Solver) doRestart() {
	s.cancelUntil(0)
	s.conflictsSinceRestart = 0
	s.Stats.Restarts++
	s.heuristic.OnRestart()
	s.deletion.OnRestart()
	s.restart.OnRestart()
	// Once an incremental driver has turned simplifications off,
	// clause-database pruning is suspended entirely: beyond the
	// canBeDeleted protection on committed clauses, the driver's
	// reasoning depends on the database only growing between its
	// Solve calls (spec.md §4.H).
	if s.deletion.ShouldDelete() && !s.simplifyDisabled {
		s.deleteClauses(s.deletion.SelectForDeletion(s.learnts))
	}
}

// nextAssumption scans assumptions in order for the first one not yet
// satisfied. failed reports an assumption that is currently false; pending
// reports one still undefined (l), which the caller must decide before
// making any free decision.
func (s *Solver) nextAssumption(assumptions []Literal) (l Literal, failed, pending bool) {
	for _, a := range assumptions {
		switch s.Value(a) {
		case True:
			continue
		case False:
			return a, true, false
		default:
			return a, false, true
		}
	}
	return 0, false, false
}

// deleteClauses detaches and removes every clause in toDelete from the
// learnt database. Clauses with CanBeDeleted() false must never be passed
// in (spec.md §8 property 6); that invariant is the deletion strategy's
// responsibility, not enforced here.
func (s *Solver) deleteClauses(toDelete []*Clause) {
	if len(toDelete) == 0 {
		return
	}
	dead := make(map[*Clause]bool, len(toDelete))
	for _, c := range toDelete {
		assert(c.CanBeDeleted(), "deletion strategy selected a non-deletable clause")
		dead[c] = true
		c.DetachClause(s.vars)
	}
	kept := s.learnts[:0]
	for _, c := range s.learnts {
		if !dead[c] {
			kept = append(kept, c)
		}
	}
	s.learnts = kept
	s.Stats.DeletedClauses += int64(len(toDelete))
}
