package program

import (
	"fmt"
	"io"

	"github.com/danhlephuoc/wasp4j/internal/minimize"
)

// DeletionPolicy selects the learned-clause deletion strategy (spec.md §6).
type DeletionPolicy int

const (
	DeletionAggressive DeletionPolicy = iota
	DeletionRestartsBased
	DeletionMinisat
)

// HeuristicPolicy selects the decision heuristic (spec.md §6).
type HeuristicPolicy int

const (
	HeuristicBerkmin HeuristicPolicy = iota
	HeuristicFirstUndefined
)

// RestartPolicy selects the restart schedule (spec.md §6).
type RestartPolicy int

const (
	RestartSequenceBased RestartPolicy = iota
	RestartGeometric
	RestartMinisat
	RestartNone
)

// OutputPolicy selects the model output format (spec.md §6).
type OutputPolicy int

const (
	OutputWasp OutputPolicy = iota
	OutputCompetition
	OutputDimacs
	OutputSilent
	OutputThirdCompetition
)

// Config collects the enumerated options of spec.md §6, populated by the
// CLI (cmd/wasp4j) or by tests. The zero value selects every default the
// original facade falls back to: aggressive deletion, Berkmin with the
// 512-clause scan limit, sequence-based restarts, WASP output, no
// minimization, one model.
type Config struct {
	Deletion DeletionPolicy

	Heuristic      HeuristicPolicy
	HeuristicLimit int // Berkmin scan limit, ≥ 1; 0 means the 512 default

	Restart          RestartPolicy
	RestartThreshold int // conflicts, ≥ 1; 0 means the 100 default

	Output OutputPolicy
	Writer io.Writer // defaults to os.Stdout

	Minimization minimize.Algorithm

	MaxModels int // models to enumerate before stopping; 0 means 1
}

// ParseDeletionPolicy maps a CLI string to a DeletionPolicy.
func ParseDeletionPolicy(s string) (DeletionPolicy, error) {
	switch s {
	case "aggressive":
		return DeletionAggressive, nil
	case "restarts":
		return DeletionRestartsBased, nil
	case "minisat":
		return DeletionMinisat, nil
	default:
		return 0, fmt.Errorf("invalid deletion policy %q (want aggressive, restarts, or minisat)", s)
	}
}

// ParseHeuristicPolicy maps a CLI string to a HeuristicPolicy.
func ParseHeuristicPolicy(s string) (HeuristicPolicy, error) {
	switch s {
	case "berkmin":
		return HeuristicBerkmin, nil
	case "firstundefined":
		return HeuristicFirstUndefined, nil
	default:
		return 0, fmt.Errorf("invalid heuristic %q (want berkmin or firstundefined)", s)
	}
}

// ParseRestartPolicy maps a CLI string to a RestartPolicy.
func ParseRestartPolicy(s string) (RestartPolicy, error) {
	switch s {
	case "sequence":
		return RestartSequenceBased, nil
	case "geometric":
		return RestartGeometric, nil
	case "minisat":
		return RestartMinisat, nil
	case "none":
		return RestartNone, nil
	default:
		return 0, fmt.Errorf("invalid restart policy %q (want sequence, geometric, minisat, or none)", s)
	}
}

// ParseOutputPolicy maps a CLI string to an OutputPolicy.
func ParseOutputPolicy(s string) (OutputPolicy, error) {
	switch s {
	case "wasp":
		return OutputWasp, nil
	case "competition":
		return OutputCompetition, nil
	case "dimacs":
		return OutputDimacs, nil
	case "silent":
		return OutputSilent, nil
	case "thirdcompetition":
		return OutputThirdCompetition, nil
	default:
		return 0, fmt.Errorf("invalid output policy %q (want wasp, competition, dimacs, silent, or thirdcompetition)", s)
	}
}

// ParseMinimizationAlgorithm maps a CLI string to a minimize.Algorithm.
func ParseMinimizationAlgorithm(s string) (minimize.Algorithm, error) {
	switch s {
	case "none":
		return minimize.None, nil
	case "enumeration":
		return minimize.Enumeration, nil
	case "guess-and-check":
		return minimize.GuessAndCheck, nil
	case "guess-and-check-and-minimize":
		return minimize.GuessAndCheckAndMinimize, nil
	case "guess-and-check-and-split":
		return minimize.GuessAndCheckAndSplit, nil
	default:
		return 0, fmt.Errorf("invalid minimization algorithm %q", s)
	}
}
