package hcc

import "github.com/danhlephuoc/wasp4j/internal/sat"

// CompositeChecker aggregates every HCC component of a program into a
// single sat.ModelChecker, the shape a real multi-component program
// installs via (*sat.Solver).SetModelChecker. Each candidate model is
// checked component by component; HasToTestModel lets components whose
// membership provably did not change since the last check skip the
// (expensive) fixpoint entirely (spec.md §4.I).
type CompositeChecker struct {
	Components []*Component
}

// CheckModel implements sat.ModelChecker, consulting components in order
// and returning the first rejecting component's loop formula. Components
// after the rejecting one keep their HasToTestModel flag, so they are
// still consulted when the next candidate comes around.
func (cc *CompositeChecker) CheckModel(s *sat.Solver) ([]sat.Literal, bool) {
	for _, c := range cc.Components {
		if !c.HasToTestModel() {
			continue
		}
		if clause := c.check(); clause != nil {
			return clause, false
		}
	}
	return nil, true
}
