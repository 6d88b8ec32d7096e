package sat

import "testing"

func TestFirstUndefined_PicksLowestIndex(t *testing.T) {
	s, v := newTestSolver(3)
	s.assume(PosLiteral(v[0]))

	h := FirstUndefinedHeuristic{}
	lit, ok := h.ChooseLiteral(s)
	if !ok {
		t.Fatal("ChooseLiteral: no literal with undefined variables left")
	}
	if lit != PosLiteral(v[1]) {
		t.Errorf("ChooseLiteral() = %v, want the positive literal of %d", lit, v[1])
	}
}

func TestFirstUndefined_ExhaustedSignalsModel(t *testing.T) {
	s, v := newTestSolver(2)
	s.assume(PosLiteral(v[0]))
	s.assume(NegLiteral(v[1]))

	h := FirstUndefinedHeuristic{}
	if _, ok := h.ChooseLiteral(s); ok {
		t.Error("ChooseLiteral: want ok=false with every variable assigned")
	}
}

// Berkmin prefers a literal from the newest learned clause that still has
// an undefined literal, before falling back to activity order.
func TestBerkmin_ScansNewestLearnts(t *testing.T) {
	h := NewBerkminHeuristic(10, 0.95, false)
	s := NewSolver(h, NoRestart{}, NewAggressiveDeletionStrategy())
	v := make([]VarID, 4)
	for i := range v {
		v[i] = s.AddVariable()
	}

	old := NewLearnedClause([]Literal{PosLiteral(v[0]), PosLiteral(v[1])})
	old.AttachClause(s.vars)
	s.learnts = append(s.learnts, old)
	newest := NewLearnedClause([]Literal{NegLiteral(v[2]), PosLiteral(v[3])})
	newest.AttachClause(s.vars)
	s.learnts = append(s.learnts, newest)

	lit, ok := h.ChooseLiteral(s)
	if !ok {
		t.Fatal("ChooseLiteral: want a decision")
	}
	if lit != NegLiteral(v[2]) {
		t.Errorf("ChooseLiteral() = %v, want %v (first undefined literal of the newest learnt)",
			lit, NegLiteral(v[2]))
	}
}

// With no learned clauses, Berkmin decides by activity: the variable bumped
// during conflict resolution outranks the others.
func TestBerkmin_ActivityTieBreak(t *testing.T) {
	h := NewBerkminHeuristic(10, 0.95, false)
	s := NewSolver(h, NoRestart{}, NewAggressiveDeletionStrategy())
	v := make([]VarID, 3)
	for i := range v {
		v[i] = s.AddVariable()
	}

	h.OnNavigatingLiteral(PosLiteral(v[1]))
	h.OnNavigatingLiteral(PosLiteral(v[1]))
	h.OnNavigatingLiteral(NegLiteral(v[2]))

	lit, ok := h.ChooseLiteral(s)
	if !ok {
		t.Fatal("ChooseLiteral: want a decision")
	}
	if lit.Var() != v[1] {
		t.Errorf("ChooseLiteral() chose variable %d, want the most active %d", lit.Var(), v[1])
	}
}

// Phase saving replays the last assigned polarity after an unassign.
func TestBerkmin_PhaseSaving(t *testing.T) {
	h := NewBerkminHeuristic(10, 0.95, true)
	s := NewSolver(h, NoRestart{}, NewAggressiveDeletionStrategy())
	v := s.AddVariable()

	s.assume(NegLiteral(v))
	s.cancelUntil(0)

	lit, ok := h.ChooseLiteral(s)
	if !ok {
		t.Fatal("ChooseLiteral: want a decision")
	}
	if lit != NegLiteral(v) {
		t.Errorf("ChooseLiteral() = %v, want the saved negative phase %v", lit, NegLiteral(v))
	}
}
