// Package program wires the CDCL engine, the HCC model checker, the
// predicate-minimization driver, and the output builders into the
// user-facing solving facade, mirroring original_source/src/WaspFacade.cpp
// (spec.md §4.H's orchestration seen from the outside).
package program

import (
	"fmt"
	"os"

	"github.com/danhlephuoc/wasp4j/internal/hcc"
	"github.com/danhlephuoc/wasp4j/internal/minimize"
	"github.com/danhlephuoc/wasp4j/internal/sat"
)

// ExitStatus is the process exit code reported by the facade (spec.md §6).
type ExitStatus int

const (
	Coherent     ExitStatus = 10
	Incoherent   ExitStatus = 20
	OptimumFound ExitStatus = 30
)

// Facade owns one solver instance configured from a Config, plus the
// program structure and designated minimization atoms the front end
// registers before Run.
type Facade struct {
	cfg    Config
	solver *sat.Solver
	output OutputBuilder

	structure       *Structure
	atomsToMinimize []sat.VarID
}

// NewFacade validates cfg, builds the solver with the selected strategies
// (the setXPolicy switches of WaspFacade.cpp), and returns the facade.
// Invalid enum values are configuration errors (spec.md §7).
func NewFacade(cfg Config) (*Facade, error) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.HeuristicLimit == 0 {
		cfg.HeuristicLimit = 512
	}
	if cfg.RestartThreshold == 0 {
		cfg.RestartThreshold = 100
	}
	if cfg.MaxModels == 0 {
		cfg.MaxModels = 1
	}
	if cfg.HeuristicLimit < 1 {
		return nil, fmt.Errorf("invalid heuristic limit %d (want >= 1)", cfg.HeuristicLimit)
	}
	if cfg.RestartThreshold < 1 {
		return nil, fmt.Errorf("invalid restart threshold %d (want >= 1)", cfg.RestartThreshold)
	}
	if cfg.Minimization < minimize.None || cfg.Minimization > minimize.GuessAndCheckAndSplit {
		return nil, fmt.Errorf("invalid minimization algorithm %d", cfg.Minimization)
	}

	heuristic, err := newHeuristic(cfg)
	if err != nil {
		return nil, err
	}
	restart, err := newRestartStrategy(cfg)
	if err != nil {
		return nil, err
	}
	deletion, err := newDeletionStrategy(cfg)
	if err != nil {
		return nil, err
	}

	f := &Facade{
		cfg:       cfg,
		solver:    sat.NewSolver(heuristic, restart, deletion),
		structure: NewStructure(),
	}
	f.output, err = newOutputBuilder(cfg.Output, cfg.Writer, f.atomName)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func newHeuristic(cfg Config) (sat.Heuristic, error) {
	switch cfg.Heuristic {
	case HeuristicBerkmin:
		return sat.NewBerkminHeuristic(cfg.HeuristicLimit, 0.95, true), nil
	case HeuristicFirstUndefined:
		return sat.FirstUndefinedHeuristic{}, nil
	default:
		return nil, fmt.Errorf("invalid heuristic policy %d", cfg.Heuristic)
	}
}

func newRestartStrategy(cfg Config) (sat.RestartStrategy, error) {
	threshold := float64(cfg.RestartThreshold)
	switch cfg.Restart {
	case RestartSequenceBased:
		return sat.NewLubyRestart(threshold), nil
	case RestartGeometric:
		return sat.NewGeometricRestart(threshold, 1.5), nil
	case RestartMinisat:
		return sat.NewMinisatRestart(threshold, 1.1, 1.5), nil
	case RestartNone:
		return sat.NoRestart{}, nil
	default:
		return nil, fmt.Errorf("invalid restart policy %d", cfg.Restart)
	}
}

func newDeletionStrategy(cfg Config) (sat.DeletionStrategy, error) {
	switch cfg.Deletion {
	case DeletionAggressive:
		return sat.NewAggressiveDeletionStrategy(), nil
	case DeletionRestartsBased:
		return sat.NewRestartsBasedDeletionStrategy(4), nil
	case DeletionMinisat:
		return sat.NewMinisatDeletionStrategy(1000, 500, 2), nil
	default:
		return nil, fmt.Errorf("invalid deletion policy %d", cfg.Deletion)
	}
}

// Solver exposes the underlying engine; the front end loads clauses
// through it.
func (f *Facade) Solver() *sat.Solver { return f.solver }

// Structure exposes the program-structure metadata table for the front end
// to populate.
func (f *Facade) Structure() *Structure { return f.structure }

// AddVariable declares a fresh variable.
func (f *Facade) AddVariable() sat.VarID { return f.solver.AddVariable() }

// AddClause loads one clause (spec.md §6's load-time input interface).
func (f *Facade) AddClause(lits []sat.Literal) error { return f.solver.AddClause(lits) }

// SetAtomsToMinimize designates the atom set whose true-count the
// configured minimization algorithm minimizes.
func (f *Facade) SetAtomsToMinimize(atoms []sat.VarID) {
	f.atomsToMinimize = atoms
}

func (f *Facade) atomName(v sat.VarID) string {
	if name := f.structure.Name(v); name != "" {
		return name
	}
	return DefaultNamer(v)
}

// Run installs the HCC checker built from the registered program structure
// and drives the search: predicate minimization when configured, otherwise
// model enumeration up to MaxModels (WaspFacade.cpp::solve).
func (f *Facade) Run() ExitStatus {
	if components := f.structure.BuildComponents(f.solver); len(components) > 0 {
		f.solver.SetModelChecker(candidateChecker{
			components: components,
			inner:      &hcc.CompositeChecker{Components: components},
		})
	}

	if f.cfg.Minimization != minimize.None {
		driver := minimize.NewDriver(f.solver, f.atomsToMinimize, f.output)
		status, err := driver.Minimize(f.cfg.Minimization)
		if err != nil || status != sat.StatusSatisfiable {
			f.output.FoundIncoherence()
			return Incoherent
		}
		return OptimumFound
	}

	models := 0
	for f.solver.Solve(nil) == sat.StatusSatisfiable {
		f.printAnswerSet()
		models++
		if models >= f.cfg.MaxModels {
			break
		}
		if !f.solver.AddClauseFromModelAndRestart() {
			break
		}
	}
	if models == 0 {
		f.output.FoundIncoherence()
		return Incoherent
	}
	return Coherent
}

func (f *Facade) printAnswerSet() {
	f.output.StartModel()
	for v := sat.VarID(1); v <= sat.VarID(f.solver.NumVars()); v++ {
		if f.solver.VarValue(v) == sat.True {
			f.output.PrintVariable(v, true)
		}
	}
	f.output.EndModel()
}

// candidateChecker re-observes the full candidate in every component
// before delegating to the composite checker: the facade has no
// propagation hook to call Observe literal by literal, so components are
// conservatively marked dirty whenever they hold a true atom.
type candidateChecker struct {
	components []*hcc.Component
	inner      *hcc.CompositeChecker
}

func (cc candidateChecker) CheckModel(s *sat.Solver) ([]sat.Literal, bool) {
	for _, c := range cc.components {
		c.ObserveCandidate()
	}
	return cc.inner.CheckModel(s)
}
