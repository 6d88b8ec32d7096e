package sat

// Stats holds search statistics. The original C++ kept these in a
// process-wide singleton (original_source/src/util/Statistics.h); spec.md
// §9's Design Notes call for an explicit struct threaded through the
// solver instead, so every Solver owns one and nothing in this package
// reaches for package-level mutable state.
type Stats struct {
	Conflicts       int64
	Restarts        int64
	Decisions       int64
	Propagations    int64
	LearnedClauses  int64
	DeletedClauses  int64
	LoopFormulas    int64 // learned from the HCC checker, see internal/hcc
	MaxDecisionLevel int
}
