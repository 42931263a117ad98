package dimacs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gosat/yass/internal/sat"
)

func clauseLiterals(p *sat.Problem) [][]sat.Literal {
	out := make([][]sat.Literal, 0, p.Clauses.Len())
	for _, c := range p.Clauses.All() {
		lits := make([]sat.Literal, len(c.Literals()))
		copy(lits, c.Literals())
		out = append(out, lits)
	}
	return out
}

var want = [][]sat.Literal{
	{sat.PositiveLiteral(1), sat.PositiveLiteral(2), sat.PositiveLiteral(3)},
	{sat.NegativeLiteral(1), sat.NegativeLiteral(2)},
	{sat.PositiveLiteral(2), sat.NegativeLiteral(3)},
}

func TestLoadDIMACS_cnf(t *testing.T) {
	got, err := LoadDIMACS("testdata/test_instance.cnf", false)
	if err != nil {
		t.Fatalf("LoadDIMACS(): want no error, got %s", err)
	}
	if got.NumVars() != 3 {
		t.Errorf("NumVars() = %d, want 3", got.NumVars())
	}
	if diff := cmp.Diff(want, clauseLiterals(got)); diff != "" {
		t.Errorf("LoadDIMACS(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestLoadDIMACS_gzip(t *testing.T) {
	got, err := LoadDIMACS("testdata/test_instance.cnf.gz", true)
	if err != nil {
		t.Fatalf("LoadDIMACS(): want no error, got %s", err)
	}
	if diff := cmp.Diff(want, clauseLiterals(got)); diff != "" {
		t.Errorf("LoadDIMACS(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestLoadDIMACS_noFile(t *testing.T) {
	if _, err := LoadDIMACS("", false); err == nil {
		t.Errorf("LoadDIMACS(): want error, got none")
	}
}

func TestLoadDIMACS_gzip_notGzipFile(t *testing.T) {
	if _, err := LoadDIMACS("testdata/test_instance.cnf", true); err == nil {
		t.Errorf("LoadDIMACS(): want error, got none")
	}
}

func TestLoadDIMACS_noHeaderRequired(t *testing.T) {
	got, err := LoadDIMACS("testdata/no_header.cnf", false)
	if err != nil {
		t.Fatalf("LoadDIMACS(): want no error, got %s", err)
	}
	if diff := cmp.Diff(want, clauseLiterals(got)); diff != "" {
		t.Errorf("LoadDIMACS(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestLoadDIMACS_emptyClauseIsAnError(t *testing.T) {
	if _, err := LoadDIMACS("testdata/empty_clause.cnf", false); err == nil {
		t.Errorf("LoadDIMACS(): want error, got none")
	}
}

func TestLoadDIMACS_satlibTrailerIsIgnored(t *testing.T) {
	got, err := LoadDIMACS("testdata/satlib_trailer.cnf", false)
	if err != nil {
		t.Fatalf("LoadDIMACS(): want no error, got %s", err)
	}
	if diff := cmp.Diff(want, clauseLiterals(got)); diff != "" {
		t.Errorf("LoadDIMACS(): mismatch (-want, +got):\n%s", diff)
	}
}

// toString returns a binary string representation of a model, e.g. model
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

// toSet converts a slice of models into a set of binary-string models.
func toSet(models [][]bool) map[string]struct{} {
	set := map[string]struct{}{}
	for _, m := range models {
		set[toString(m)] = struct{}{}
	}
	return set
}

// solveAllModels exhaustively finds every model of baseLits by solving,
// then forbidding the model just found with a blocking clause and solving
// again from scratch, in the teacher's own solveAll idiom: this reader's
// Problem has no incremental clause-learning state to extend mid-search,
// so each round rebuilds a fresh Problem from the accumulated clause list
// instead of mutating a live Solver.
func solveAllModels(baseLits [][]sat.Literal, numVars int) [][]bool {
	clauses := append([][]sat.Literal{}, baseLits...)
	var models [][]bool

	for {
		p := sat.NewProblem()
		for _, lits := range clauses {
			p.AddClause(lits)
		}
		s := sat.NewSolver(p, sat.NewVSIDS(), 0)
		verdict, stack := s.Solve()
		if verdict != sat.SAT {
			return models
		}

		assignment := sat.Model(p, stack)
		model := make([]bool, numVars)
		block := make([]sat.Literal, 0, numVars)
		for v := 1; v <= numVars; v++ {
			pol := assignment[sat.Variable(v)]
			model[v-1] = pol == sat.On
			if pol == sat.On {
				block = append(block, sat.NegativeLiteral(sat.Variable(v)))
			} else {
				block = append(block, sat.PositiveLiteral(sat.Variable(v)))
			}
		}
		models = append(models, model)
		clauses = append(clauses, block)
	}
}

// TestLoadDIMACS_allModelsMatchReference cross-checks every model the
// solver finds for test_instance.cnf against a reference set of models
// computed independently (spec §8 Completeness law, applied exhaustively
// rather than via a single sample model).
func TestLoadDIMACS_allModelsMatchReference(t *testing.T) {
	got, err := LoadDIMACS("testdata/test_instance.cnf", false)
	if err != nil {
		t.Fatalf("LoadDIMACS(): want no error, got %s", err)
	}
	wantModels, err := ParseModels("testdata/test_instance.cnf.models")
	if err != nil {
		t.Fatalf("ParseModels(): want no error, got %s", err)
	}

	gotModels := solveAllModels(clauseLiterals(got), got.NumVars())

	if len(gotModels) != len(wantModels) {
		t.Errorf("solveAllModels(): got %d models, want %d", len(gotModels), len(wantModels))
	}
	if diff := cmp.Diff(toSet(wantModels), toSet(gotModels)); diff != "" {
		t.Errorf("solveAllModels(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestLoadDIMACS_multilineClause(t *testing.T) {
	got, err := LoadDIMACS("testdata/multiline_clause.cnf", false)
	if err != nil {
		t.Fatalf("LoadDIMACS(): want no error, got %s", err)
	}
	if diff := cmp.Diff(want, clauseLiterals(got)); diff != "" {
		t.Errorf("LoadDIMACS(): mismatch (-want, +got):\n%s", diff)
	}
}
