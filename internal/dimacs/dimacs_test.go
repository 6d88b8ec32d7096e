package dimacs

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danhlephuoc/wasp4j/internal/sat"
)

// Each test case pairs a DIMACS instance (.cnf) with the exhaustive set of
// its models (.cnf.models, one model per line using the instance's
// literals), following the convention of reference-checked SAT test sets.
var testdataDir = "testdata"

type testCase struct {
	instanceName string
	instanceFile string
	modelsFile   string
}

func listTestCases(dir string) ([]testCase, error) {
	testCases := []testCase{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".cnf") {
			return nil
		}
		testCases = append(testCases, testCase{
			instanceName: d.Name(),
			instanceFile: path,
			modelsFile:   path + ".models",
		})
		return nil
	})
	return testCases, err
}

// toString returns a binary string representation of the given model, e.g.
// [true, false, false] becomes "100".
func toString(model []bool) string {
	s := make([]byte, 0, len(model))
	for _, b := range model {
		if b {
			s = append(s, '1')
		} else {
			s = append(s, '0')
		}
	}
	return string(s)
}

func toSet(models [][]bool) map[string]struct{} {
	set := map[string]struct{}{}
	for _, m := range models {
		set[toString(m)] = struct{}{}
	}
	return set
}

// solveAll enumerates every model of the loaded instance by excluding each
// one found before re-solving.
func solveAll(s *sat.Solver) [][]bool {
	var models [][]bool
	for s.Solve(nil) == sat.StatusSatisfiable {
		model := make([]bool, s.NumVars())
		for v := sat.VarID(1); v <= sat.VarID(s.NumVars()); v++ {
			model[v-1] = s.VarValue(v) == sat.True
		}
		models = append(models, model)
		if !s.AddClauseFromModelAndRestart() {
			break
		}
	}
	return models
}

func TestSolveAll(t *testing.T) {
	testCases, err := listTestCases(testdataDir)
	if err != nil {
		t.Fatalf("Error listing test cases: %s", err)
	}
	if len(testCases) == 0 {
		t.Fatal("no test cases found")
	}

	for _, tc := range testCases {
		t.Run(tc.instanceName, func(t *testing.T) {
			want, err := ReadModels(tc.modelsFile)
			if err != nil {
				t.Fatalf("Model parsing error: %s", err)
			}
			s := sat.NewSolver(sat.FirstUndefinedHeuristic{}, sat.NoRestart{}, sat.NewAggressiveDeletionStrategy())
			if err := LoadFile(tc.instanceFile, false, s); err != nil {
				t.Fatalf("Instance parsing error: %s", err)
			}

			got := solveAll(s)

			if len(got) != len(want) {
				t.Errorf("Incorrect number of models: got %d, want %d", len(got), len(want))
			}
			if !cmp.Equal(toSet(got), toSet(want)) {
				t.Errorf("Model mismatch: got %v, want %v", toSet(got), toSet(want))
			}
		})
	}
}

func TestLoad_RejectsNonCNF(t *testing.T) {
	s := sat.NewSolver(sat.FirstUndefinedHeuristic{}, sat.NoRestart{}, sat.NewAggressiveDeletionStrategy())
	err := Load(strings.NewReader("p wcnf 2 1\n1 2 0\n"), s)
	if err == nil {
		t.Error("Load(wcnf): want error, got nil")
	}
}
