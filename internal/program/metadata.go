package program

import (
	"sort"

	"github.com/danhlephuoc/wasp4j/internal/hcc"
	"github.com/danhlephuoc/wasp4j/internal/sat"
)

// NoComponent marks an atom that belongs to no head-cycle-free component
// and therefore never needs unfounded-set checking.
const NoComponent = -1

// AtomData is the per-atom program-structure metadata the (out-of-scope)
// front end computes while translating rules to clauses (spec.md §3 "Atom
// metadata", §6): the atom's name, its SCC in the positive dependency
// graph, the HCC component it was assigned to, and the ground rules whose
// head contains it, in clause form with role tags (see hcc.Rule).
type AtomData struct {
	Name          string
	SCC           int
	Component     int
	DefiningRules []hcc.Rule
}

// Structure aggregates the atom metadata of one ground program.
type Structure struct {
	atoms map[sat.VarID]*AtomData
}

func NewStructure() *Structure {
	return &Structure{atoms: make(map[sat.VarID]*AtomData)}
}

// SetAtom registers v's name and graph assignments. Component is an HCC
// component id, or NoComponent.
func (st *Structure) SetAtom(v sat.VarID, name string, scc, component int) {
	st.data(v).Name = name
	st.data(v).SCC = scc
	st.data(v).Component = component
}

// AddDefiningRule appends one defining rule (in clause form) for head atom v.
func (st *Structure) AddDefiningRule(v sat.VarID, r hcc.Rule) {
	d := st.data(v)
	d.DefiningRules = append(d.DefiningRules, r)
}

func (st *Structure) data(v sat.VarID) *AtomData {
	d, ok := st.atoms[v]
	if !ok {
		d = &AtomData{SCC: NoComponent, Component: NoComponent}
		st.atoms[v] = d
	}
	return d
}

// Name returns the registered atom name, or "" if none.
func (st *Structure) Name(v sat.VarID) string {
	if d, ok := st.atoms[v]; ok {
		return d.Name
	}
	return ""
}

// BuildComponents groups atoms by HCC component id and constructs one
// hcc.Component per group, in ascending id order, each wired to outer.
func (st *Structure) BuildComponents(outer *sat.Solver) []*hcc.Component {
	byID := make(map[int][]sat.VarID)
	for v, d := range st.atoms {
		if d.Component != NoComponent {
			byID[d.Component] = append(byID[d.Component], v)
		}
	}

	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	components := make([]*hcc.Component, 0, len(ids))
	for _, id := range ids {
		vars := byID[id]
		sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })
		rules := make(map[sat.VarID][]hcc.Rule, len(vars))
		for _, v := range vars {
			rules[v] = st.atoms[v].DefiningRules
		}
		components = append(components, hcc.NewComponent(id, outer, vars, rules))
	}
	return components
}
