// Package dimacs loads DIMACS CNF instances straight into the solver's
// incremental API, for solver-only use (no ASP program structure): plain
// satisfiability runs, tests, and benchmarks. It builds on
// github.com/rhartert/dimacs' streaming Builder interface.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/danhlephuoc/wasp4j/internal/sat"
)

// Solver is the subset of the engine's load-time API the loader needs.
type Solver interface {
	AddVariable() sat.VarID
	AddClause([]sat.Literal) error
}

// Load parses a DIMACS CNF formula from r and adds its variables and
// clauses to solver. DIMACS variable i maps to solver variable i (both are
// 1-based).
func Load(r io.Reader, solver Solver) error {
	return dimacs.ReadBuilder(r, &builder{solver: solver})
}

// LoadFile is Load over a file, transparently gunzipping when gzipped is
// set.
func LoadFile(filename string, gzipped bool, solver Solver) error {
	rc, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer rc.Close()
	return Load(rc, solver)
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// builder wraps the solver to implement dimacs.Builder.
type builder struct {
	solver Solver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem")
	}
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			clause[i] = sat.NegLiteral(sat.VarID(-l))
		} else {
			clause[i] = sat.PosLiteral(sat.VarID(l))
		}
	}
	return b.solver.AddClause(clause)
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// ReadModels returns the list of models contained in the given file, one
// model per line using the instance's literals; model[i] reports variable
// i+1's truth.
func ReadModels(filename string) ([][]bool, error) {
	rc, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer rc.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(rc, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files should not have problem lines")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
