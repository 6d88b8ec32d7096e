package program

import (
	"fmt"
	"io"
	"strings"

	"github.com/danhlephuoc/wasp4j/internal/sat"
)

// OutputBuilder renders models and the incoherence verdict (spec.md §6).
// The facade calls StartModel, then PrintVariable once per true atom, then
// EndModel; FoundIncoherence is called instead when no model exists. The
// interface also satisfies minimize.Output.
type OutputBuilder interface {
	StartModel()
	PrintVariable(v sat.VarID, truth bool)
	EndModel()
	FoundIncoherence()
}

// Namer maps a variable to the atom name the front end registered for it.
type Namer func(v sat.VarID) string

// DefaultNamer names atoms by their variable index.
func DefaultNamer(v sat.VarID) string {
	return fmt.Sprintf("x%d", v)
}

// waspOutput is the native format: one "A name." line per true atom
// (SPEC_FULL.md §12 item 7), INCOHERENT on unsatisfiable programs.
type waspOutput struct {
	w    io.Writer
	name Namer
}

func (o *waspOutput) StartModel() {}

func (o *waspOutput) PrintVariable(v sat.VarID, truth bool) {
	if truth {
		fmt.Fprintf(o.w, "A %s.\n", o.name(v))
	}
}

func (o *waspOutput) EndModel() {
	fmt.Fprintln(o.w)
}

func (o *waspOutput) FoundIncoherence() {
	fmt.Fprintln(o.w, "INCOHERENT")
}

// competitionOutput follows the ASP-competition answer line: a status line
// followed by the true atoms' indices, whitespace-separated.
type competitionOutput struct {
	w    io.Writer
	vars []string
}

func (o *competitionOutput) StartModel() {
	o.vars = o.vars[:0]
}

func (o *competitionOutput) PrintVariable(v sat.VarID, truth bool) {
	if truth {
		o.vars = append(o.vars, fmt.Sprintf("%d", v))
	}
}

func (o *competitionOutput) EndModel() {
	fmt.Fprintln(o.w, "s ANSWER SET FOUND")
	fmt.Fprintf(o.w, "v %s\n", strings.Join(o.vars, " "))
}

func (o *competitionOutput) FoundIncoherence() {
	fmt.Fprintln(o.w, "s UNSATISFIABLE")
}

// dimacsOutput mimics a SAT solver: "s SATISFIABLE" plus a "v"-prefixed
// literal line terminated by 0.
type dimacsOutput struct {
	w    io.Writer
	vars []string
}

func (o *dimacsOutput) StartModel() {
	o.vars = o.vars[:0]
}

func (o *dimacsOutput) PrintVariable(v sat.VarID, truth bool) {
	if truth {
		o.vars = append(o.vars, fmt.Sprintf("%d", v))
	} else {
		o.vars = append(o.vars, fmt.Sprintf("-%d", v))
	}
}

func (o *dimacsOutput) EndModel() {
	fmt.Fprintln(o.w, "s SATISFIABLE")
	fmt.Fprintf(o.w, "v %s 0\n", strings.Join(o.vars, " "))
}

func (o *dimacsOutput) FoundIncoherence() {
	fmt.Fprintln(o.w, "s UNSATISFIABLE")
}

// silentOutput emits nothing; the caller still learns the verdict from the
// exit status.
type silentOutput struct{}

func (silentOutput) StartModel()                   {}
func (silentOutput) PrintVariable(sat.VarID, bool) {}
func (silentOutput) EndModel()                     {}
func (silentOutput) FoundIncoherence()             {}

// thirdCompetitionOutput is the third-ASP-competition format: ANSWER on its
// own line, the atom names dot-terminated on the next, INCONSISTENT for
// unsatisfiable programs.
type thirdCompetitionOutput struct {
	w    io.Writer
	name Namer
	vars []string
}

func (o *thirdCompetitionOutput) StartModel() {
	o.vars = o.vars[:0]
}

func (o *thirdCompetitionOutput) PrintVariable(v sat.VarID, truth bool) {
	if truth {
		o.vars = append(o.vars, o.name(v)+".")
	}
}

func (o *thirdCompetitionOutput) EndModel() {
	fmt.Fprintln(o.w, "ANSWER")
	fmt.Fprintln(o.w, strings.Join(o.vars, " "))
}

func (o *thirdCompetitionOutput) FoundIncoherence() {
	fmt.Fprintln(o.w, "INCONSISTENT")
}

// newOutputBuilder maps an OutputPolicy to its builder
// (original_source/src/WaspFacade.cpp::setOutputPolicy).
func newOutputBuilder(policy OutputPolicy, w io.Writer, name Namer) (OutputBuilder, error) {
	switch policy {
	case OutputWasp:
		return &waspOutput{w: w, name: name}, nil
	case OutputCompetition:
		return &competitionOutput{w: w}, nil
	case OutputDimacs:
		return &dimacsOutput{w: w}, nil
	case OutputSilent:
		return silentOutput{}, nil
	case OutputThirdCompetition:
		return &thirdCompetitionOutput{w: w, name: name}, nil
	default:
		return nil, fmt.Errorf("invalid output policy %d", policy)
	}
}
