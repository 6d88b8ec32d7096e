package program

import (
	"bytes"
	"strings"
	"testing"

	"github.com/danhlephuoc/wasp4j/internal/hcc"
	"github.com/danhlephuoc/wasp4j/internal/minimize"
	"github.com/danhlephuoc/wasp4j/internal/sat"
)

func newTestFacade(t *testing.T, cfg Config) (*Facade, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	cfg.Writer = buf
	cfg.Heuristic = HeuristicFirstUndefined
	cfg.Restart = RestartNone
	f, err := NewFacade(cfg)
	if err != nil {
		t.Fatalf("NewFacade: %v", err)
	}
	return f, buf
}

// Scenario 2 (spec.md §8): {x∨y}, {¬x∨y}, {x∨¬y} has the unique model
// {x, y}.
func TestRun_Coherent(t *testing.T) {
	f, buf := newTestFacade(t, Config{Output: OutputWasp})
	x := f.AddVariable()
	y := f.AddVariable()
	f.Structure().SetAtom(x, "x", NoComponent, NoComponent)
	f.Structure().SetAtom(y, "y", NoComponent, NoComponent)

	for _, cl := range [][]sat.Literal{
		{sat.PosLiteral(x), sat.PosLiteral(y)},
		{sat.NegLiteral(x), sat.PosLiteral(y)},
		{sat.PosLiteral(x), sat.NegLiteral(y)},
	} {
		if err := f.AddClause(cl); err != nil {
			t.Fatal(err)
		}
	}

	if got := f.Run(); got != Coherent {
		t.Fatalf("Run() = %v, want Coherent (%d)", got, Coherent)
	}
	out := buf.String()
	if !strings.Contains(out, "A x.") || !strings.Contains(out, "A y.") {
		t.Errorf("output %q, want both atoms printed", out)
	}
}

// Scenario 1 (spec.md §8): {x}, {¬x} is INCOHERENT and prints no model.
func TestRun_Incoherent(t *testing.T) {
	f, buf := newTestFacade(t, Config{Output: OutputWasp})
	x := f.AddVariable()
	if err := f.AddClause([]sat.Literal{sat.PosLiteral(x)}); err != nil {
		t.Fatal(err)
	}
	if err := f.AddClause([]sat.Literal{sat.NegLiteral(x)}); err != nil {
		t.Fatal(err)
	}

	if got := f.Run(); got != Incoherent {
		t.Fatalf("Run() = %v, want Incoherent (%d)", got, Incoherent)
	}
	if out := buf.String(); !strings.Contains(out, "INCOHERENT") || strings.Contains(out, "A ") {
		t.Errorf("output %q, want INCOHERENT and no model", out)
	}
}

// Scenario 3 (spec.md §8) through the facade: the disjunctive rule
// a ∨ b ← with constraint ← a, b yields two answer sets; enumeration never
// prints {a, b}.
func TestRun_DisjunctiveProgram(t *testing.T) {
	f, buf := newTestFacade(t, Config{Output: OutputThirdCompetition, MaxModels: 10})
	a := f.AddVariable()
	b := f.AddVariable()

	if err := f.AddClause([]sat.Literal{sat.PosLiteral(a), sat.PosLiteral(b)}); err != nil {
		t.Fatal(err)
	}
	if err := f.AddClause([]sat.Literal{sat.NegLiteral(a), sat.NegLiteral(b)}); err != nil {
		t.Fatal(err)
	}

	rule := hcc.Rule{Literals: []hcc.RuleLiteral{
		{Lit: sat.PosLiteral(a), Role: sat.RoleHead},
		{Lit: sat.PosLiteral(b), Role: sat.RoleHead},
	}}
	st := f.Structure()
	st.SetAtom(a, "a", 0, 0)
	st.SetAtom(b, "b", 1, 1)
	st.AddDefiningRule(a, rule)
	st.AddDefiningRule(b, rule)

	if got := f.Run(); got != Coherent {
		t.Fatalf("Run() = %v, want Coherent", got)
	}
	out := buf.String()
	if got := strings.Count(out, "ANSWER"); got != 2 {
		t.Errorf("printed %d answer sets, want 2:\n%s", got, out)
	}
	if strings.Contains(out, "a. b.") {
		t.Errorf("non-minimal model {a, b} printed:\n%s", out)
	}
}

// Scenario 5 (spec.md §8) through the facade: minimization over
// {x₁∨x₂∨x₃} ends with exactly one designated atom true and reports
// OptimumFound.
func TestRun_Minimization(t *testing.T) {
	f, buf := newTestFacade(t, Config{
		Output:       OutputCompetition,
		Minimization: minimize.GuessAndCheckAndSplit,
	})
	vars := []sat.VarID{f.AddVariable(), f.AddVariable(), f.AddVariable()}
	if err := f.AddClause([]sat.Literal{
		sat.PosLiteral(vars[0]), sat.PosLiteral(vars[1]), sat.PosLiteral(vars[2]),
	}); err != nil {
		t.Fatal(err)
	}
	f.SetAtomsToMinimize(vars)

	if got := f.Run(); got != OptimumFound {
		t.Fatalf("Run() = %v, want OptimumFound (%d)", got, OptimumFound)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "v ") || len(strings.Fields(last)) != 2 {
		t.Errorf("model line %q, want exactly one true atom", last)
	}
}

func TestNewFacade_InvalidConfig(t *testing.T) {
	cases := []Config{
		{Heuristic: HeuristicPolicy(99)},
		{Restart: RestartPolicy(99)},
		{Deletion: DeletionPolicy(99)},
		{Output: OutputPolicy(99)},
		{Minimization: minimize.Algorithm(99)},
		{HeuristicLimit: -1},
		{RestartThreshold: -5},
	}
	for _, cfg := range cases {
		if _, err := NewFacade(cfg); err == nil {
			t.Errorf("NewFacade(%+v): want error, got nil", cfg)
		}
	}
}

func TestParsePolicies(t *testing.T) {
	if p, err := ParseDeletionPolicy("minisat"); err != nil || p != DeletionMinisat {
		t.Errorf("ParseDeletionPolicy(minisat) = %v, %v", p, err)
	}
	if _, err := ParseDeletionPolicy("bogus"); err == nil {
		t.Error("ParseDeletionPolicy(bogus): want error")
	}
	if p, err := ParseHeuristicPolicy("firstundefined"); err != nil || p != HeuristicFirstUndefined {
		t.Errorf("ParseHeuristicPolicy(firstundefined) = %v, %v", p, err)
	}
	if p, err := ParseRestartPolicy("none"); err != nil || p != RestartNone {
		t.Errorf("ParseRestartPolicy(none) = %v, %v", p, err)
	}
	if p, err := ParseOutputPolicy("silent"); err != nil || p != OutputSilent {
		t.Errorf("ParseOutputPolicy(silent) = %v, %v", p, err)
	}
	if p, err := ParseMinimizationAlgorithm("guess-and-check"); err != nil || p != minimize.GuessAndCheck {
		t.Errorf("ParseMinimizationAlgorithm(guess-and-check) = %v, %v", p, err)
	}
	if _, err := ParseMinimizationAlgorithm("bogus"); err == nil {
		t.Error("ParseMinimizationAlgorithm(bogus): want error")
	}
}
