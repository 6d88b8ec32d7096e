package sat

// Analyze performs first-UIP conflict resolution starting from the
// conflicting clause (spec.md §4.E). It must be called with
// decisionLevel() > 0. It returns the learned clause's literals, with the
// asserting literal at position 0, and the backjump level (0 if the
// learned clause turns out unit).
//
// The walk is driven entirely by the trail and each variable's implicant,
// rather than by reaching into Clause internals: every clause visited is
// asked to call back via OnLearning (spec.md §4.B's visitor, replacing the
// source's friend-class coupling, §9) so the heuristic can bump variable
// activity, and the clause's own activity is bumped here directly.
func (s *Solver) Analyze(conflict *Clause) ([]Literal, int) {
	level := s.decisionLevel()
	assert(level > 0, "Analyze called at decision level 0")

	s.seen.Clear()
	s.tmpLearnts = s.tmpLearnts[:0]
	s.tmpLearnts = append(s.tmpLearnts, 0) // placeholder for the UIP literal

	pending := 0
	backjump := 0
	trailIdx := s.trail.size() - 1

	c := conflict
	var p Literal

	for {
		s.bumpClauseActivity(c)
		c.OnLearning(s.heuristic)

		for _, m := range c.Literals() {
			v := m.Var()
			if s.seen.Contains(v) {
				continue
			}
			s.seen.Add(v)

			switch lv := s.vars[v].level; {
			case lv == level:
				pending++
			case lv > 0:
				s.tmpLearnts = append(s.tmpLearnts, m)
				if lv > backjump {
					backjump = lv
				}
			default:
				// lv == 0: globally falsified, dropped (spec.md §4.E step 5).
			}
		}

		// Find the next most-recently-assigned literal still marked seen;
		// that is the next literal to navigate (spec.md §4.E step 2).
		for {
			p = s.trail.at(trailIdx)
			trailIdx--
			if s.seen.Contains(p.Var()) {
				break
			}
		}

		pending--
		if pending == 0 {
			break // p is the first UIP.
		}
		c = s.vars[p.Var()].implicant
	}

	s.tmpLearnts[0] = p.Opposite()

	learned := make([]Literal, len(s.tmpLearnts))
	copy(learned, s.tmpLearnts)
	return learned, backjump
}

// bumpClauseActivity increases c's activity by the current increment
// (no-op for non-learned clauses), rescaling every learned clause's
// activity if the increment has grown too large. Spec.md §4.G's "increase
// the bump by 1/decay per conflict and periodically rescale" applied to
// clause activity rather than variable activity.
func (s *Solver) bumpClauseActivity(c *Clause) {
	if !c.IsLearned() {
		return
	}
	c.BumpActivity(s.clauseInc)
	if c.Activity() > 1e100 {
		s.rescaleClauseActivities()
	}
}

func (s *Solver) rescaleClauseActivities() {
	for _, c := range s.learnts {
		c.RescaleActivity(1e-100)
	}
	s.clauseInc *= 1e-100
}

// decayClauseActivity is called once per conflict.
func (s *Solver) decayClauseActivity() {
	s.clauseInc /= s.clauseDecay
}
