package hcc

import "github.com/danhlephuoc/wasp4j/internal/sat"

// Component is the per-HCC (head-cycle-free) component record: the
// variables it contains, each atom's defining rules, a trail of the
// component's literals observed true in the current candidate, and an
// inner sat.Solver (the "checker") encoding external support, consulted
// once the outer solver reaches a candidate model (spec.md §3, §4.I;
// original_source/src/HCComponent.cpp).
//
// Component implements sat.ModelChecker; install it with
// (*sat.Solver).SetModelChecker.
type Component struct {
	id int

	vars          []sat.VarID
	inComp        map[sat.VarID]bool
	definingRules map[sat.VarID][]Rule

	outer *sat.Solver

	trail          []sat.Literal
	hasToTestModel bool

	// The inner checker solver and its variable tables: unfoundedOf maps a
	// component atom to the checker variable meaning "this atom is in the
	// unfounded set"; mirrors maps every outer variable occurring in a
	// defining rule to a checker variable frozen, at check time, to the
	// candidate's value of that outer variable.
	checker     *sat.Solver
	unfoundedOf map[sat.VarID]sat.VarID
	mirrors     []mirrorEntry
	mirrorOf    map[sat.VarID]sat.VarID

	unfoundedBuf []sat.VarID
}

type mirrorEntry struct {
	outer sat.VarID
	inner sat.VarID
}

// NewComponent builds a Component over vars (the atoms assigned to this
// HCC) given each atom's defining rules, and constructs the inner checker
// solver from the same rules (spec.md §3). outer is the solver this
// component will be installed as a model checker for.
func NewComponent(id int, outer *sat.Solver, vars []sat.VarID, definingRules map[sat.VarID][]Rule) *Component {
	inComp := make(map[sat.VarID]bool, len(vars))
	for _, v := range vars {
		inComp[v] = true
	}

	c := &Component{
		id:            id,
		vars:          vars,
		inComp:        inComp,
		definingRules: definingRules,
		outer:         outer,
		unfoundedOf:   make(map[sat.VarID]sat.VarID, len(vars)),
		mirrorOf:      make(map[sat.VarID]sat.VarID),
	}
	c.buildChecker()
	return c
}

// Observe must be called whenever a component variable is assigned true in
// the outer solver, in assignment order (spec.md §3's HCC component trail).
// It marks the component as due for a model check the next time the outer
// solver reaches a candidate. Single-component use (CheckModel below) does
// not need it: Observe/HasToTestModel only
// matter as the filter CompositeChecker uses to skip components whose
// membership provably did not change since their last check.
func (c *Component) Observe(l sat.Literal) {
	if !l.IsPositive() || !c.inComp[l.Var()] {
		return
	}
	c.trail = append(c.trail, l)
	c.hasToTestModel = true
}

// ObserveCandidate records every component atom currently true in the
// outer solver, the bulk form of Observe used by callers that have no
// per-literal propagation hook (e.g. the program facade, which only sees
// complete candidates).
func (c *Component) ObserveCandidate() {
	for _, v := range c.vars {
		if c.outer.VarValue(v) == sat.True {
			c.Observe(sat.PosLiteral(v))
		}
	}
}

// Reset pops trail entries from the end while the last one's literal is no
// longer true in the outer solver, e.g. after a backjump undid the
// assignment; it stops at the first entry still true, so entries below it
// are kept whatever their value (spec.md §4.I's checker lifecycle;
// original_source/src/HCComponent.cpp::reset).
func (c *Component) Reset() {
	for len(c.trail) > 0 && c.outer.Value(c.trail[len(c.trail)-1]) != sat.True {
		c.trail = c.trail[:len(c.trail)-1]
	}
}

// HasToTestModel reports whether a component variable was observed true
// since the last check; consulted by CompositeChecker to skip unaffected
// components in a program with several HCC components.
func (c *Component) HasToTestModel() bool { return c.hasToTestModel }

// CheckModel implements sat.ModelChecker directly for the common
// single-component case: it unconditionally runs the inner checker against
// the candidate and, if a non-empty unfounded set exists, synthesizes the
// loop-formula clause of one of its atoms (spec.md §4.I). One clause per
// candidate is enough: the outer solver learns it as a conflict, which
// destroys the candidate, and any remaining unfounded atoms are
// rediscovered at the next candidate (the shape of
// original_source/src/HCComponent.cpp's one-clause-at-a-time
// getClauseToPropagate). Use CompositeChecker instead when a program has
// more than one HCC component, so each component's HasToTestModel gate is
// honored.
func (c *Component) CheckModel(s *sat.Solver) ([]sat.Literal, bool) {
	clause := c.check()
	return clause, clause == nil
}

// check runs the inner checker and returns the loop-formula clause of the
// first unfounded atom in component variable order (nil if the candidate
// is accepted), clearing the hasToTestModel gate as a side effect.
func (c *Component) check() []sat.Literal {
	c.hasToTestModel = false

	unfounded := c.computeUnfoundedSet()
	if len(unfounded) == 0 {
		return nil
	}
	c.validateUnfoundedSet(unfounded)

	for _, v := range c.vars {
		if !unfounded[v] {
			continue
		}
		rc := &reasonCollector{}
		c.computeReasonForUnfoundedAtom(v, unfounded, rc)
		return buildLoopFormula(v, rc.antecedents)
	}
	return nil
}

// buildChecker constructs the inner solver's static support encoding. Per
// defining rule r of component atom a, the clause
//
//	¬unfounded(a) ∨ (mirror of each external/blocking literal of r)
//	             ∨ (unfounded(p) for each internal positive-body atom p)
//
// states that a can only be unfounded if r is blocked: some rule literal
// other than a's own head occurrence is true under the candidate (the rule
// clause is satisfied elsewhere — a false positive-body atom, a true
// negative-body atom, or a chosen alternate head), or some internal
// positive-body atom is itself unfounded (circular support). A final
// clause requires the unfounded set to be non-empty. Candidate truth
// values enter only at check time, as assumptions over the mirror
// variables, so the encoding is built once per component.
func (c *Component) buildChecker() {
	c.checker = sat.NewSolver(sat.FirstUndefinedHeuristic{}, sat.NoRestart{}, sat.NewAggressiveDeletionStrategy())
	for _, v := range c.vars {
		c.unfoundedOf[v] = c.checker.AddVariable()
	}

	for _, a := range c.vars {
		for _, rule := range c.definingRules[a] {
			lits := []sat.Literal{sat.NegLiteral(c.unfoundedOf[a])}
			for _, rl := range rule.Literals {
				v := rl.Lit.Var()
				if v == a && rl.Role == sat.RoleHead {
					continue
				}
				lits = append(lits, c.mirrorLiteral(rl.Lit))
				if rl.Role == sat.RolePosBody && c.inComp[v] {
					lits = append(lits, sat.PosLiteral(c.unfoundedOf[v]))
				}
			}
			_ = c.checker.AddClause(lits)
		}
	}

	atLeastOne := make([]sat.Literal, 0, len(c.vars))
	for _, v := range c.vars {
		atLeastOne = append(atLeastOne, sat.PosLiteral(c.unfoundedOf[v]))
	}
	_ = c.checker.AddClause(atLeastOne)
}

// mirrorLiteral returns the checker literal mirroring l, creating the
// mirror variable for l's outer variable on first use.
func (c *Component) mirrorLiteral(l sat.Literal) sat.Literal {
	mv, ok := c.mirrorOf[l.Var()]
	if !ok {
		mv = c.checker.AddVariable()
		c.mirrorOf[l.Var()] = mv
		c.mirrors = append(c.mirrors, mirrorEntry{outer: l.Var(), inner: mv})
	}
	if l.IsPositive() {
		return sat.PosLiteral(mv)
	}
	return sat.NegLiteral(mv)
}

// computeUnfoundedSet runs the inner checker with the candidate as
// assumptions (spec.md §4.I: "the checker runs with that model as
// assumptions over the component"): mirror variables are pinned to the
// candidate's values, and atoms false in the candidate are excluded from
// the unfounded set, which must contain only candidate-true atoms. A
// satisfiable inner search exhibits a non-empty unfounded set, read off
// the unfounded(v) variables; an unsatisfiable one certifies that every
// candidate-true atom of the component has external support.
func (c *Component) computeUnfoundedSet() map[sat.VarID]bool {
	c.checker.UnrollToZero()
	c.checker.ClearConflictStatus()

	assumptions := make([]sat.Literal, 0, len(c.mirrors)+len(c.vars))
	for _, m := range c.mirrors {
		if c.outer.VarValue(m.outer) == sat.True {
			assumptions = append(assumptions, sat.PosLiteral(m.inner))
		} else {
			assumptions = append(assumptions, sat.NegLiteral(m.inner))
		}
	}
	for _, v := range c.vars {
		if c.outer.VarValue(v) != sat.True {
			assumptions = append(assumptions, sat.NegLiteral(c.unfoundedOf[v]))
		}
	}

	if c.checker.Solve(assumptions) != sat.StatusSatisfiable {
		return nil
	}

	c.unfoundedBuf = c.unfoundedBuf[:0]
	unfounded := make(map[sat.VarID]bool)
	for _, v := range c.vars {
		if c.checker.VarValue(c.unfoundedOf[v]) == sat.True {
			unfounded[v] = true
			c.unfoundedBuf = append(c.unfoundedBuf, v)
		}
	}
	return unfounded
}

// validateUnfoundedSet cross-checks the checker's answer against the
// defining rules directly: every member must have all of its rules blocked
// under the candidate and the set itself. Debug-only (spec.md §7);
// compiled away in a release build.
func (c *Component) validateUnfoundedSet(unfounded map[sat.VarID]bool) {
	if !debugAssertions {
		return
	}
	for v := range unfounded {
		assert(!c.isFounded(v, unfounded),
			"checker-computed unfounded set contains an externally supported atom")
	}
}

// isFounded reports whether v has at least one defining rule that still
// provides genuine external support given the current unfounded-set guess.
func (c *Component) isFounded(v sat.VarID, unfounded map[sat.VarID]bool) bool {
	for _, rule := range c.definingRules[v] {
		if ruleSupports(c.outer, rule, v, unfounded) {
			return true
		}
	}
	return false
}

// ruleSupports reports whether rule, taken alone, justifies head's truth
// under the outer candidate and the unfounded-set guess. Rules are in
// clause form (see Rule), so the rule fails to support head exactly when
// some literal other than head's own occurrence satisfies the clause — a
// false positive-body atom, a true negative-body atom, or a true alternate
// head not itself in the set — or when an internal positive-body atom is a
// set member (circular support only).
func ruleSupports(outer *sat.Solver, rule Rule, head sat.VarID, unfounded map[sat.VarID]bool) bool {
	for _, rl := range rule.Literals {
		lit, role, v := rl.Lit, rl.Role, rl.Lit.Var()
		if role == sat.RoleHead && v == head {
			continue
		}
		if role == sat.RolePosBody && unfounded[v] {
			return false
		}
		if outer.Value(lit) == sat.True && !(role == sat.RoleHead && unfounded[v]) {
			return false
		}
	}
	return true
}
