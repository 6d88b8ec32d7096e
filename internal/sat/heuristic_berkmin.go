package sat

import "github.com/rhartert/yagh"

// BerkminHeuristic implements the Berkmin decision strategy (spec.md §4.F):
// scan the most recently learned clauses, newest first, for one that still
// has an undefined literal, and decide that literal; if none of the last
// ScanLimit learned clauses qualifies, fall back to the highest-activity
// undefined variable overall. Activity itself is VSIDS-style: bumped on
// every literal touched during conflict resolution (OnNavigatingLiteral)
// and periodically decayed (OnConflict), ordered by
// github.com/rhartert/yagh's indexed heap exactly as
// rhartert-yass/internal/sat/ordering.go's VarOrder does.
type BerkminHeuristic struct {
	// ScanLimit bounds how many of the most recent learned clauses are
	// inspected before falling back to plain activity order. 0 means
	// "inspect every learned clause".
	ScanLimit int

	order *yagh.IntMap[float64]

	scores     []float64
	scoreInc   float64
	scoreDecay float64

	phases      []Value
	phaseSaving bool
}

// NewBerkminHeuristic returns a BerkminHeuristic with the given scan limit,
// activity decay factor (in (0, 1]), and whether to reuse a variable's last
// assigned polarity as its next decided polarity.
func NewBerkminHeuristic(scanLimit int, scoreDecay float64, phaseSaving bool) *BerkminHeuristic {
	return &BerkminHeuristic{
		ScanLimit:   scanLimit,
		order:       yagh.New[float64](0),
		scoreInc:    1,
		scoreDecay:  scoreDecay,
		phaseSaving: phaseSaving,
	}
}

func (h *BerkminHeuristic) OnNewVariable(v VarID) {
	// Variable IDs are 1-based (0 is a sentinel), so the score table and
	// the heap are padded up to and including index v; slot 0 is never
	// inserted in the heap and never popped.
	for len(h.scores) <= int(v) {
		h.scores = append(h.scores, 0)
		h.phases = append(h.phases, Undefined)
		h.order.GrowBy(1)
	}
	h.order.Put(int(v), 0)
}

func (h *BerkminHeuristic) OnRestart() {}

func (h *BerkminHeuristic) OnLearning(c *Clause) {}

func (h *BerkminHeuristic) OnUnitPropagation(c *Clause) {}

// OnConflict decays the activity increment, matching VarOrder.DecayScores:
// rather than shrinking every score, the increment grows so future bumps
// count for relatively more (spec.md §4.G).
func (h *BerkminHeuristic) OnConflict() {
	h.scoreInc /= h.scoreDecay
	if h.scoreInc > 1e100 {
		h.rescale()
	}
}

// OnNavigatingLiteral bumps l's variable activity, called by
// conflictClause.OnLearning(h) once per literal resolved over (spec.md
// §4.E step 1).
func (h *BerkminHeuristic) OnNavigatingLiteral(l Literal) {
	v := int(l.Var())
	newScore := h.scores[v] + h.scoreInc
	h.scores[v] = newScore
	if h.order.Contains(v) {
		h.order.Put(v, -newScore)
	}
	if newScore > 1e100 {
		h.rescale()
	}
}

func (h *BerkminHeuristic) rescale() {
	h.scoreInc *= 1e-100
	for v, s := range h.scores {
		newScore := s * 1e-100
		h.scores[v] = newScore
		if h.order.Contains(v) {
			h.order.Put(v, -newScore)
		}
	}
}

// OnUnassign makes v a candidate again, optionally remembering lastValue as
// its next decided phase.
func (h *BerkminHeuristic) OnUnassign(v VarID, lastValue Value) {
	if h.phaseSaving && lastValue != Undefined {
		h.phases[v] = lastValue
	}
	h.order.Put(int(v), -h.scores[v])
}

func (h *BerkminHeuristic) decide(v VarID) Literal {
	switch h.phases[v] {
	case False:
		return NegLiteral(v)
	default:
		return PosLiteral(v)
	}
}

// ChooseLiteral implements Heuristic.
func (h *BerkminHeuristic) ChooseLiteral(s *Solver) (Literal, bool) {
	limit := h.ScanLimit
	learnts := s.Learnts()
	if limit <= 0 || limit > len(learnts) {
		limit = len(learnts)
	}
	for i := 0; i < limit; i++ {
		c := learnts[len(learnts)-1-i]
		for _, l := range c.Literals() {
			if s.Value(l) == Undefined {
				return l, true
			}
		}
	}

	for {
		next, ok := h.order.Pop()
		if !ok {
			return 0, false
		}
		v := VarID(next.Elem)
		if s.VarValue(v) != Undefined {
			continue
		}
		return h.decide(v), true
	}
}
