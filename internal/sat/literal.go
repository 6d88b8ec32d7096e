package sat

import "fmt"

// VarID identifies a variable. Variables are dense positive integers in
// 1..N; 0 is never a valid variable and is used as a sentinel.
type VarID int

// Literal is a (variable, polarity) pair, packed as a dense int so it can
// index directly into the solver's per-literal assignment/watch tables:
// literal 2*v is the positive occurrence of v, 2*v+1 its negation.
type Literal int

// PosLiteral returns the positive literal of variable v.
func PosLiteral(v VarID) Literal {
	return Literal(v * 2)
}

// NegLiteral returns the negative literal of variable v.
func NegLiteral(v VarID) Literal {
	return PosLiteral(v).Opposite()
}

// Var returns the variable identified by the literal.
func (l Literal) Var() VarID {
	return VarID(l / 2)
}

// IsPositive reports whether l is the variable's positive occurrence.
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the negation of l.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

// sign is 0 for the positive occurrence and 1 for the negative one. It is
// used to index a Variable's pair of watch lists.
func (l Literal) sign() int {
	return int(l & 1)
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.Var())
	}
	return fmt.Sprintf("-%d", l.Var())
}

// Role describes how a literal occurrence is used within a rule clause, as
// reported by the (out of scope) program simplifier. The HCC model checker
// consults these tags when computing unfounded-set reasons; the core CDCL
// engine itself is agnostic to them.
type Role uint8

const (
	// RoleNone marks an occurrence with no program-structure meaning (e.g.
	// in a clause that did not originate from a rule, such as a learned
	// clause or a plain CNF constraint).
	RoleNone Role = iota
	// RoleHead marks the literal as a disjunctive head atom occurrence.
	RoleHead
	// RolePosBody marks the literal as a positive body literal occurrence.
	RolePosBody
	// RoleNegBody marks the literal as a negated body literal occurrence.
	RoleNegBody
	// RoleDoubleNegBody marks the literal as a double-negation body literal
	// occurrence (not not a, used by some ASP front ends for classical
	// negation support).
	RoleDoubleNegBody
)
