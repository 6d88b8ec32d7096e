// Package hcc implements the disjunctive unfounded-set model checker that
// plugs into internal/sat's CDCL engine as a sat.ModelChecker (spec.md
// §4.I). It is grounded on original_source/src/HCComponent.cpp, which
// restricts itself to head-cycle-free (HCF) components: components where no
// disjunctive rule has two head atoms in the same strongly connected
// component. That restriction is what lets every literal other than the
// rule's own component head be treated as externally fixed once a candidate
// model is reached.
package hcc

import "github.com/danhlephuoc/wasp4j/internal/sat"

// RuleLiteral pairs a literal with its role (head / positive body / negative
// body / double-negation body) inside one ground rule, as reported by the
// (out-of-scope) program front end that ground and simplified the logic
// program into CNF-plus-metadata form (spec.md §3 "Atom metadata").
type RuleLiteral struct {
	Lit  sat.Literal
	Role sat.Role
}

// Rule is one of an atom's defining ground rules (spec.md §3's
// "definingRulesForNonHCFAtom", despite the name also covering the HCF case
// here), represented as a clause the way the front end hands rules to the
// solver: the rule a ∨ b ← c, not d is the clause a ∨ b ∨ ¬c ∨ d, so a
// positive-body occurrence carries the atom's negative literal and a
// negative-body occurrence its positive literal. A rule with a single head
// literal is a normal (non-disjunctive) rule; more than one head literal
// makes it disjunctive.
type Rule struct {
	Literals []RuleLiteral
}
