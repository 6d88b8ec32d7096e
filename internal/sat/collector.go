package sat

// SliceCollector is the simplest UndefinedCollector: it appends every
// reported variable to a slice. Used by callers of
// Clause.CheckUnsatisfiedAndOptimize that just need the list of undefined
// variables.
type SliceCollector struct {
	Vars []VarID
}

func (c *SliceCollector) CollectUndefined(v VarID) {
	c.Vars = append(c.Vars, v)
}

func (c *SliceCollector) Reset() {
	c.Vars = c.Vars[:0]
}
