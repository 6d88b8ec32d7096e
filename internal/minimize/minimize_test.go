package minimize

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danhlephuoc/wasp4j/internal/sat"
)

// recordingOutput captures each printed model as the list of its true
// variables.
type recordingOutput struct {
	models  [][]sat.VarID
	current []sat.VarID
}

func (o *recordingOutput) StartModel() { o.current = nil }

func (o *recordingOutput) PrintVariable(v sat.VarID, truth bool) {
	if truth {
		o.current = append(o.current, v)
	}
}

func (o *recordingOutput) EndModel() {
	o.models = append(o.models, o.current)
}

func (o *recordingOutput) last() []sat.VarID {
	if len(o.models) == 0 {
		return nil
	}
	return o.models[len(o.models)-1]
}

func newDriver(t *testing.T, clauses [][]int, numVars int, minimize []int) (*Driver, *recordingOutput) {
	t.Helper()
	s := sat.NewSolver(sat.FirstUndefinedHeuristic{}, sat.NoRestart{}, sat.NewAggressiveDeletionStrategy())
	vars := make([]sat.VarID, numVars+1)
	for i := 1; i <= numVars; i++ {
		vars[i] = s.AddVariable()
	}
	for _, cl := range clauses {
		lits := make([]sat.Literal, len(cl))
		for i, l := range cl {
			if l > 0 {
				lits[i] = sat.PosLiteral(vars[l])
			} else {
				lits[i] = sat.NegLiteral(vars[-l])
			}
		}
		if err := s.AddClause(lits); err != nil {
			t.Fatalf("AddClause(%v): %v", cl, err)
		}
	}
	atoms := make([]sat.VarID, len(minimize))
	for i, v := range minimize {
		atoms[i] = vars[v]
	}
	out := &recordingOutput{}
	return NewDriver(s, atoms, out), out
}

func countIn(model []sat.VarID, atoms []int) int {
	n := 0
	for _, v := range model {
		for _, a := range atoms {
			if int(v) == a {
				n++
			}
		}
	}
	return n
}

// Scenario 5 (spec.md §8): {x₁∨x₂∨x₃} with all three atoms designated must
// end with exactly one true atom, under every algorithm.
func TestMinimize_SingleClause(t *testing.T) {
	algorithms := []Algorithm{
		Enumeration,
		GuessAndCheck,
		GuessAndCheckAndMinimize,
		GuessAndCheckAndSplit,
	}
	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			d, out := newDriver(t, [][]int{{1, 2, 3}}, 3, []int{1, 2, 3})
			status, err := d.Minimize(alg)
			if err != nil {
				t.Fatalf("Minimize(%v): %v", alg, err)
			}
			if status != sat.StatusSatisfiable {
				t.Fatalf("Minimize(%v) = %v, want StatusSatisfiable", alg, status)
			}
			if got := countIn(out.last(), []int{1, 2, 3}); got != 1 {
				t.Errorf("true designated atoms = %d, want 1 (model %v)", got, out.last())
			}
		})
	}
}

// Enumeration must find the global minimum, not just a subset-minimal
// model: with ¬x₁ → x₂ ∧ x₃, the model {x₁} beats {x₂, x₃} even though
// both are subset-minimal among models.
func TestMinimize_EnumerationFindsGlobalMinimum(t *testing.T) {
	clauses := [][]int{
		{1, 2},
		{1, 3},
	}
	d, out := newDriver(t, clauses, 3, []int{1, 2, 3})
	status, err := d.Minimize(Enumeration)
	if err != nil {
		t.Fatal(err)
	}
	if status != sat.StatusSatisfiable {
		t.Fatalf("Minimize(Enumeration) = %v, want StatusSatisfiable", status)
	}
	if got := countIn(out.last(), []int{1, 2, 3}); got != 1 {
		t.Errorf("minimum true count = %d, want 1 (model %v)", got, out.last())
	}
}

// Two runs of Enumeration on the same input must agree on the minimum true
// count (spec.md §8 round-trip law), even if they print different models.
func TestMinimize_EnumerationDeterministicCount(t *testing.T) {
	clauses := [][]int{
		{1, 2, 3},
		{-1, -2},
	}
	counts := make([]int, 2)
	for run := range counts {
		d, out := newDriver(t, clauses, 3, []int{1, 2, 3})
		if status, err := d.Minimize(Enumeration); err != nil || status != sat.StatusSatisfiable {
			t.Fatalf("run %d: Minimize = %v, %v", run, status, err)
		}
		counts[run] = countIn(out.last(), []int{1, 2, 3})
	}
	if diff := cmp.Diff(counts[0], counts[1]); diff != "" {
		t.Errorf("true counts differ between runs (-first +second):\n%s", diff)
	}
}

// An unsatisfiable program reports incoherence from every algorithm and
// prints nothing.
func TestMinimize_Incoherent(t *testing.T) {
	algorithms := []Algorithm{
		Enumeration,
		GuessAndCheck,
		GuessAndCheckAndMinimize,
		GuessAndCheckAndSplit,
	}
	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			d, out := newDriver(t, [][]int{{1}, {-1}}, 1, []int{1})
			status, err := d.Minimize(alg)
			if err != nil {
				t.Fatal(err)
			}
			if status != sat.StatusUnsatisfiable {
				t.Errorf("Minimize(%v) = %v, want StatusUnsatisfiable", alg, status)
			}
			if len(out.models) != 0 {
				t.Errorf("printed %d models, want 0", len(out.models))
			}
		})
	}
}

// Atoms fixed at level 0 are left out of the candidate bookkeeping but
// still appear in the printed model.
func TestMinimize_LevelZeroAtoms(t *testing.T) {
	clauses := [][]int{
		{1},    // fact: x1 true at level 0
		{2, 3}, // one of x2, x3
	}
	d, out := newDriver(t, clauses, 3, []int{1, 2, 3})
	status, err := d.Minimize(GuessAndCheckAndSplit)
	if err != nil {
		t.Fatal(err)
	}
	if status != sat.StatusSatisfiable {
		t.Fatalf("Minimize = %v, want StatusSatisfiable", status)
	}
	model := out.last()
	if got := countIn(model, []int{1}); got != 1 {
		t.Errorf("level-0 fact x1 missing from printed model %v", model)
	}
	if got := countIn(model, []int{2, 3}); got != 1 {
		t.Errorf("true count among x2,x3 = %d, want 1 (model %v)", got, model)
	}
}

// The invalid algorithm value is a configuration error, not a crash
// (spec.md §7).
func TestMinimize_InvalidAlgorithm(t *testing.T) {
	d, _ := newDriver(t, [][]int{{1}}, 1, []int{1})
	if _, err := d.Minimize(None); err == nil {
		t.Error("Minimize(None): want error, got nil")
	}
}
