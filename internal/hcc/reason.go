package hcc

import "github.com/danhlephuoc/wasp4j/internal/sat"

// reasonCollector accumulates the antecedent literals gathered while
// computing one unfounded atom's loop formula, one per non-blocked
// defining rule (spec.md §4.I).
type reasonCollector struct {
	antecedents []sat.Literal
}

func (rc *reasonCollector) add(l sat.Literal) {
	rc.antecedents = append(rc.antecedents, l)
}

// computeReasonForUnfoundedAtom walks each defining rule of v and, for
// every rule that is not entirely blocked by the unfounded set, picks
// exactly one antecedent literal whose negation becomes a disjunct of v's
// loop formula.
//
// Ported directly from original_source/src/HCComponent.cpp's
// computeReasonForUnfoundedAtom, preserving its exact (order-dependent)
// priority even though it reads, at first glance, like a strict two-phase
// "prefer an undefined literal, else the minimum-level true literal": a
// later true literal at some level unconditionally overwrites the witness
// position even after an earlier undefined literal already set it, because
// the true-literal branch only compares against the running minimum level
// (initially "none seen") and never checks whether the witness was already
// set by the undefined-literal branch. A from-scratch two-pass
// implementation (undefined literals strictly preferred over all true
// ones) would diverge from the source on rules that contain both, so the
// single forward scan below is kept exactly as found.
func (c *Component) computeReasonForUnfoundedAtom(v sat.VarID, unfounded map[sat.VarID]bool, rc *reasonCollector) {
	for _, rule := range c.definingRules[v] {
		skipRule := false
		pos := -1
		minLevel := -1 // -1 means "no true-literal witness found yet"

		for i, rl := range rule.Literals {
			lit, role, lv := rl.Lit, rl.Role, rl.Lit.Var()

			if unfounded[lv] {
				if role == sat.RoleHead {
					continue
				}
				if role == sat.RolePosBody {
					skipRule = true
					break
				}
			}

			if c.outer.Value(lit) == sat.Undefined && c.inComp[lv] &&
				(role == sat.RoleNegBody || role == sat.RoleHead) {
				if pos == -1 {
					pos = i
				}
				continue
			}

			if c.outer.Value(lit) != sat.True {
				continue
			}

			dl := c.outer.VarLevel(lv)
			if dl == 0 {
				skipRule = true
				break
			}
			if minLevel == -1 || dl < minLevel {
				minLevel = dl
				pos = i
			}
		}

		if !skipRule && pos != -1 {
			rc.add(rule.Literals[pos].Lit.Opposite())
		}
	}
}

// buildLoopFormula assembles the clause ¬a ∨ (antecedents), one antecedent
// per defining rule of a that still offered a witness (spec.md §4.I): if a
// remains true without any of those antecedents also holding, the clause
// forces a false on the next propagation.
func buildLoopFormula(a sat.VarID, antecedents []sat.Literal) []sat.Literal {
	clause := make([]sat.Literal, 0, len(antecedents)+1)
	clause = append(clause, sat.NegLiteral(a))
	clause = append(clause, antecedents...)
	return clause
}
