// Package minimize implements the predicate-minimization driver (spec.md
// §4.J): four strategies that minimize the number of true atoms from a
// designated set, built entirely on top of internal/sat's incremental API.
// Ported from original_source/src/PredicateMinimization.cpp, with its
// goto-based iterations rewritten as bounded loops (spec.md §9).
package minimize

import (
	"fmt"

	"github.com/danhlephuoc/wasp4j/internal/sat"
)

// Algorithm selects one of the minimization strategies (spec.md §6).
type Algorithm int

const (
	None Algorithm = iota
	Enumeration
	GuessAndCheck
	GuessAndCheckAndMinimize
	GuessAndCheckAndSplit
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Enumeration:
		return "enumeration"
	case GuessAndCheck:
		return "guess-and-check"
	case GuessAndCheckAndMinimize:
		return "guess-and-check-and-minimize"
	case GuessAndCheckAndSplit:
		return "guess-and-check-and-split"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Output receives the minimal model found by the driver; satisfied by the
// OutputBuilder implementations in internal/program (spec.md §6).
type Output interface {
	StartModel()
	PrintVariable(v sat.VarID, truth bool)
	EndModel()
}

// Driver repeatedly solves under evolving blocking clauses and assumptions
// to minimize the count of true atoms among atomsToMinimize.
type Driver struct {
	solver *sat.Solver
	atoms  []sat.VarID
	output Output

	trueVars []sat.VarID
}

// NewDriver returns a driver minimizing the given atoms on solver, printing
// the winning model to output.
func NewDriver(solver *sat.Solver, atoms []sat.VarID, output Output) *Driver {
	return &Driver{solver: solver, atoms: atoms, output: output}
}

// Minimize runs the selected algorithm. It returns StatusUnsatisfiable when
// the underlying program has no model at all; otherwise StatusSatisfiable,
// after printing a model with a minimal (Enumeration: globally minimum;
// others: subset-minimal) count of true designated atoms.
func (d *Driver) Minimize(alg Algorithm) (sat.Status, error) {
	switch alg {
	case Enumeration:
		return d.enumeration(), nil
	case GuessAndCheck:
		return d.guessAndCheck(), nil
	case GuessAndCheckAndMinimize:
		return d.guessAndCheckAndMinimize(), nil
	case GuessAndCheckAndSplit:
		return d.guessAndCheckAndSplit(), nil
	default:
		return sat.StatusUnknown, fmt.Errorf("minimize: invalid algorithm %v", alg)
	}
}

// computeFirstModel finds a baseline model before any minimization starts.
func (d *Driver) computeFirstModel() bool {
	return d.solver.Solve(nil) == sat.StatusSatisfiable
}

func (d *Driver) countTrue() int {
	count := 0
	for _, v := range d.atoms {
		if d.solver.VarValue(v) == sat.True {
			count++
		}
	}
	return count
}

// computeTrueVars snapshots the full set of true variables of the current
// model, so it can still be printed after the trail has been unrolled.
func (d *Driver) computeTrueVars() {
	d.trueVars = d.trueVars[:0]
	for v := sat.VarID(1); v <= sat.VarID(d.solver.NumVars()); v++ {
		if d.solver.VarValue(v) == sat.True {
			d.trueVars = append(d.trueVars, v)
		}
	}
}

func (d *Driver) printTrueVars() {
	d.output.StartModel()
	for _, v := range d.trueVars {
		d.output.PrintVariable(v, true)
	}
	d.output.EndModel()
}

// enumeration is the branch-and-cut strategy: enumerate models via blocking
// clauses, remembering the one with the fewest true designated atoms
// (spec.md §4.J; PredicateMinimization.cpp::enumerationBC).
func (d *Driver) enumeration() sat.Status {
	d.solver.TurnOffSimplifications()
	if !d.computeFirstModel() {
		return sat.StatusUnsatisfiable
	}

	min := d.countTrue()
	d.computeTrueVars()
	if min == 0 || !d.solver.AddClauseFromModelAndRestart() {
		d.printTrueVars()
		return sat.StatusSatisfiable
	}

	for d.solver.Solve(nil) == sat.StatusSatisfiable {
		if count := d.countTrue(); count < min {
			d.computeTrueVars()
			min = count
		}
		if min == 0 || !d.solver.AddClauseFromModelAndRestart() {
			break
		}
	}
	d.printTrueVars()
	return sat.StatusSatisfiable
}

// guessAndCheck re-solves after each model with a clause requiring some
// currently-true designated atom to flip to false, while assumptions pin
// every currently-false designated atom false; unsatisfiability of that
// query proves the model minimal (spec.md §4.J).
func (d *Driver) guessAndCheck() sat.Status {
	d.solver.TurnOffSimplifications()
	if !d.computeFirstModel() {
		return sat.StatusUnsatisfiable
	}
	if d.checkAnswerSet() {
		return sat.StatusSatisfiable
	}
	d.solver.UnrollToZero()
	d.solver.ClearConflictStatus()

	for d.solver.Solve(nil) == sat.StatusSatisfiable {
		if d.checkAnswerSet() {
			return sat.StatusSatisfiable
		}
		d.solver.UnrollToZero()
		d.solver.ClearConflictStatus()
	}
	return sat.StatusSatisfiable
}

// checkAnswerSet reports whether the current model is minimal, printing it
// if so. The check clause and assumptions are built while the model is
// still assigned; the clause is committed (non-deletable) so later
// iterations cannot revisit a rejected model
// (PredicateMinimization.cpp::checkAnswerSet).
func (d *Driver) checkAnswerSet() bool {
	var clause []sat.Literal
	var assumptions []sat.Literal
	d.computeTrueVars()

	for _, v := range d.atoms {
		if d.solver.VarLevel(v) == 0 {
			continue
		}
		if d.solver.VarValue(v) == sat.True {
			clause = append(clause, sat.NegLiteral(v))
		} else {
			clause = append(clause, sat.PosLiteral(v))
			assumptions = append(assumptions, sat.NegLiteral(v))
		}
	}
	d.solver.UnrollToZero()
	d.solver.ClearConflictStatus()

	minimal := false
	if _, ok := d.solver.AddClauseRuntime(clause); !ok {
		minimal = true
	} else if d.solver.Solve(assumptions) == sat.StatusUnsatisfiable {
		minimal = true
	}

	if minimal {
		d.printTrueVars()
	}
	return minimal
}

// guessAndCheckAndMinimize iteratively tightens a first model: each round
// forbids keeping every remaining candidate true and pins the atoms already
// made false, until the tightening becomes unsatisfiable (spec.md §4.J;
// the goto begin loop of PredicateMinimization.cpp::minimizeAnswerSet).
func (d *Driver) guessAndCheckAndMinimize() sat.Status {
	d.solver.TurnOffSimplifications()
	if !d.computeFirstModel() {
		return sat.StatusUnsatisfiable
	}

	var candidates []sat.VarID
	var assumptions []sat.Literal
	for _, v := range d.atoms {
		if d.solver.VarLevel(v) == 0 {
			continue
		}
		if d.solver.VarValue(v) == sat.True {
			candidates = append(candidates, v)
		} else {
			assumptions = append(assumptions, sat.NegLiteral(v))
		}
	}

	// Each successful round makes at least one candidate false (the clause
	// forbids keeping them all), so the loop runs at most len(candidates)+1
	// times.
	for {
		d.computeTrueVars()

		clause := make([]sat.Literal, 0, len(candidates))
		for _, v := range candidates {
			clause = append(clause, sat.NegLiteral(v))
		}

		d.solver.UnrollToZero()
		d.solver.ClearConflictStatus()

		c, ok := d.solver.AddClauseRuntime(clause)
		if !ok || d.solver.Solve(assumptions) == sat.StatusUnsatisfiable {
			d.printTrueVars()
			return sat.StatusSatisfiable
		}

		// The improving model satisfied the tightening clause on its own;
		// release it for deletion and shrink the candidate set to the atoms
		// it still keeps true.
		c.SetCanBeDeleted(true)
		j := 0
		for _, v := range candidates {
			if d.solver.VarLevel(v) == 0 {
				continue
			}
			if d.solver.VarValue(v) == sat.True {
				candidates[j] = v
				j++
			} else {
				assumptions = append(assumptions, sat.NegLiteral(v))
			}
		}
		candidates = candidates[:j]
	}
}

// guessAndCheckAndSplit scans the candidate atoms one by one: assume the
// candidate false — if still satisfiable it is dropped (and the model may
// drop further candidates), otherwise it is fixed true (spec.md §4.J;
// PredicateMinimization.cpp::minimizeAnswerSetSplit).
func (d *Driver) guessAndCheckAndSplit() sat.Status {
	d.solver.TurnOffSimplifications()
	if !d.computeFirstModel() {
		return sat.StatusUnsatisfiable
	}

	var candidates []sat.VarID
	var assumptions []sat.Literal
	for _, v := range d.atoms {
		if d.solver.VarLevel(v) == 0 {
			continue
		}
		if d.solver.VarValue(v) == sat.True {
			candidates = append(candidates, v)
		} else {
			assumptions = append(assumptions, sat.NegLiteral(v))
		}
	}

	// Every round removes one candidate, so the scan is linear in the
	// number of initially-true designated atoms.
	for len(candidates) > 0 {
		last := candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
		assumptions = append(assumptions, sat.NegLiteral(last))

		d.solver.UnrollToZero()
		d.solver.ClearConflictStatus()
		if d.solver.Solve(assumptions) == sat.StatusUnsatisfiable {
			assumptions[len(assumptions)-1] = sat.PosLiteral(last)
		} else {
			j := 0
			for _, v := range candidates {
				if d.solver.VarLevel(v) == 0 {
					continue
				}
				if d.solver.VarValue(v) == sat.True {
					candidates[j] = v
					j++
				} else {
					assumptions = append(assumptions, sat.NegLiteral(v))
				}
			}
			candidates = candidates[:j]
		}
	}

	d.solver.UnrollToZero()
	d.solver.ClearConflictStatus()
	if d.solver.Solve(assumptions) == sat.StatusUnsatisfiable {
		// The assumptions replay decisions the scan already proved
		// consistent; they cannot fail here.
		return sat.StatusUnsatisfiable
	}
	d.computeTrueVars()
	d.printTrueVars()
	return sat.StatusSatisfiable
}
