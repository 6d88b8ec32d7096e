// Command wasp4j solves DIMACS CNF instances with the CDCL engine,
// optionally minimizing the count of true atoms from a designated set.
// ASP programs in the ground numeric format enter through the program
// facade's API instead; the front-end parser for that format is a separate
// concern and not part of this binary.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/danhlephuoc/wasp4j/internal/dimacs"
	"github.com/danhlephuoc/wasp4j/internal/program"
	"github.com/danhlephuoc/wasp4j/internal/sat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagGzipped = flag.Bool(
	"gzip",
	false,
	"instance file is gzip compressed",
)

var flagDeletion = flag.String(
	"deletion",
	"aggressive",
	"learned clause deletion policy: aggressive, restarts, or minisat",
)

var flagHeuristic = flag.String(
	"heuristic",
	"berkmin",
	"decision heuristic: berkmin or firstundefined",
)

var flagHeuristicLimit = flag.Int(
	"heuristic-limit",
	512,
	"berkmin learned-clause scan limit (>= 1)",
)

var flagRestarts = flag.String(
	"restarts",
	"sequence",
	"restart policy: sequence, geometric, minisat, or none",
)

var flagRestartThreshold = flag.Int(
	"restart-threshold",
	100,
	"restart threshold in conflicts (>= 1)",
)

var flagOutput = flag.String(
	"output",
	"wasp",
	"output format: wasp, competition, dimacs, silent, or thirdcompetition",
)

var flagMinimize = flag.String(
	"predminimization",
	"none",
	"predicate minimization algorithm: none, enumeration, guess-and-check, "+
		"guess-and-check-and-minimize, or guess-and-check-and-split",
)

var flagMinimizeAtoms = flag.String(
	"atoms-to-minimize",
	"",
	"comma-separated variable indices whose true-count is minimized",
)

var flagMaxModels = flag.Int(
	"n",
	1,
	"number of models to enumerate (0 enumerates all)",
)

var flagStats = flag.Bool(
	"stats",
	false,
	"print search statistics",
)

type config struct {
	instanceFile string
	gzipped      bool
	memProfile   bool
	cpuProfile   bool
	stats        bool

	facade          program.Config
	atomsToMinimize []sat.VarID
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}

	cfg := &config{
		instanceFile: flag.Arg(0),
		gzipped:      *flagGzipped,
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		stats:        *flagStats,
	}

	var err error
	if cfg.facade.Deletion, err = program.ParseDeletionPolicy(*flagDeletion); err != nil {
		return nil, err
	}
	if cfg.facade.Heuristic, err = program.ParseHeuristicPolicy(*flagHeuristic); err != nil {
		return nil, err
	}
	if cfg.facade.Restart, err = program.ParseRestartPolicy(*flagRestarts); err != nil {
		return nil, err
	}
	if cfg.facade.Output, err = program.ParseOutputPolicy(*flagOutput); err != nil {
		return nil, err
	}
	if cfg.facade.Minimization, err = program.ParseMinimizationAlgorithm(*flagMinimize); err != nil {
		return nil, err
	}
	cfg.facade.HeuristicLimit = *flagHeuristicLimit
	cfg.facade.RestartThreshold = *flagRestartThreshold
	cfg.facade.MaxModels = *flagMaxModels
	if cfg.facade.MaxModels <= 0 {
		cfg.facade.MaxModels = int(^uint(0) >> 1)
	}

	if *flagMinimizeAtoms != "" {
		for _, field := range strings.Split(*flagMinimizeAtoms, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || v < 1 {
				return nil, fmt.Errorf("invalid atom index %q in -atoms-to-minimize", field)
			}
			cfg.atomsToMinimize = append(cfg.atomsToMinimize, sat.VarID(v))
		}
	}

	return cfg, nil
}

func run(cfg *config) (program.ExitStatus, error) {
	facade, err := program.NewFacade(cfg.facade)
	if err != nil {
		return 0, err
	}
	if err := dimacs.LoadFile(cfg.instanceFile, cfg.gzipped, facade.Solver()); err != nil {
		return 0, fmt.Errorf("could not parse instance: %w", err)
	}
	facade.SetAtomsToMinimize(cfg.atomsToMinimize)

	t := time.Now()
	status := facade.Run()
	elapsed := time.Since(t)

	if cfg.stats {
		stats := facade.Solver().Stats
		fmt.Printf("c time (sec):  %f\n", elapsed.Seconds())
		fmt.Printf("c conflicts:   %d (%.2f /sec)\n", stats.Conflicts, float64(stats.Conflicts)/elapsed.Seconds())
		fmt.Printf("c decisions:   %d\n", stats.Decisions)
		fmt.Printf("c restarts:    %d\n", stats.Restarts)
		fmt.Printf("c learned:     %d (%d deleted)\n", stats.LearnedClauses, stats.DeletedClauses)
	}
	return status, nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
	}

	status, err := run(cfg)
	if cfg.cpuProfile {
		// os.Exit below skips deferred calls, so the profile is stopped
		// explicitly.
		pprof.StopCPUProfile()
	}
	if err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	os.Exit(int(status))
}
