package sat

import "testing"

// newTestProblem builds a Problem with the given clauses (as int literals,
// positive/negative variable numbers) without going through the DIMACS
// reader, for focused BCP unit tests.
func newTestProblem(clauses [][]int) *Problem {
	p := NewProblem()
	for _, c := range clauses {
		lits := make([]Literal, len(c))
		for i, n := range c {
			if n > 0 {
				lits[i] = PositiveLiteral(Variable(n))
			} else {
				lits[i] = NegativeLiteral(Variable(-n))
			}
		}
		p.AddClause(lits)
	}
	return p
}

func TestTrySubstituteWatch_findsSubstitute(t *testing.T) {
	p := newTestProblem([][]int{{1, 2, 3}})
	c := p.Clauses.Get(0)

	// Watches start on literals 1 and 2 (parse order). Falsify literal 1;
	// literal 3 should become the new watch.
	p.Assign.Assign(1, Off)

	got := TrySubstituteWatch(p, c)
	if got.Kind != FoundSubstitute {
		t.Fatalf("TrySubstituteWatch() = %+v, want FoundSubstitute", got)
	}
	w0, w1 := c.Watches()
	if w0 != PositiveLiteral(3) && w1 != PositiveLiteral(3) {
		t.Errorf("watches = (%v, %v), want one of them to be literal 3", w0, w1)
	}
}

func TestTrySubstituteWatch_clauseIsSat(t *testing.T) {
	p := newTestProblem([][]int{{1, 2, 3}})
	c := p.Clauses.Get(0)

	p.Assign.Assign(3, On) // satisfies via a non-watched literal

	got := TrySubstituteWatch(p, c)
	if got.Kind != ClauseIsSat {
		t.Fatalf("TrySubstituteWatch() = %+v, want ClauseIsSat", got)
	}
}

func TestTrySubstituteWatch_forcedAssignment(t *testing.T) {
	p := newTestProblem([][]int{{1, 2}})
	c := p.Clauses.Get(0)

	p.Assign.Assign(1, Off) // no substitute left, literal 2 is forced On

	got := TrySubstituteWatch(p, c)
	if got.Kind != ForcedAssignment || got.Literal != PositiveLiteral(2) {
		t.Fatalf("TrySubstituteWatch() = %+v, want ForcedAssignment(2)", got)
	}
}

func TestTrySubstituteWatch_unitClauseUnsat(t *testing.T) {
	p := newTestProblem([][]int{{1}})
	c := p.Clauses.Get(0)

	p.Assign.Assign(1, Off)

	got := TrySubstituteWatch(p, c)
	if got.Kind != UnitClauseUnsat {
		t.Fatalf("TrySubstituteWatch() = %+v, want UnitClauseUnsat", got)
	}
}

func TestDrainPending_propagatesUnitImplication(t *testing.T) {
	p := newTestProblem([][]int{{1, 2}})
	implied := NewImpliedSet(3)

	p.Assign.Assign(1, Off)
	p.Pending.Add(0)

	if !drainPending(p, implied) {
		t.Fatalf("drainPending() = false, want true")
	}
	if implied.IsEmpty() {
		t.Fatalf("implied set is empty, want variable 2 implied On")
	}
	v, pol, witness := implied.Pop()
	if v != 2 || pol != On || witness != 0 {
		t.Errorf("Pop() = (%d, %v, %d), want (2, On, 0)", v, pol, witness)
	}
}

func TestDrainPending_conflictingImplicationsFail(t *testing.T) {
	p := newTestProblem([][]int{{1, 2}, {1, -2}})
	implied := NewImpliedSet(3)

	p.Assign.Assign(1, Off)
	p.Pending.Add(0)
	p.Pending.Add(1)

	if drainPending(p, implied) {
		t.Fatalf("drainPending() = true, want false (2 forced both On and Off)")
	}
}

func TestRescanAllClauses_detectsUnsatisfiable(t *testing.T) {
	p := newTestProblem([][]int{{1, 2}})
	p.Assign.Assign(1, Off)
	p.Assign.Assign(2, Off)
	p.Pending.Add(0)

	if rescanAllClauses(p) {
		t.Fatalf("rescanAllClauses() = true, want false")
	}
}

func TestClauseState(t *testing.T) {
	p := newTestProblem([][]int{{1, 2}})
	c := p.Clauses.Get(0)

	if got := clauseState(p, c); got != Unresolved {
		t.Fatalf("clauseState() = %v, want Unresolved", got)
	}

	p.Assign.Assign(1, On)
	if got := clauseState(p, c); got != Satisfied {
		t.Errorf("clauseState() = %v, want Satisfied", got)
	}

	p.Assign.Unassign(1)
	p.Assign.Assign(1, Off)
	p.Assign.Assign(2, Off)
	if got := clauseState(p, c); got != Unsatisfiable {
		t.Errorf("clauseState() = %v, want Unsatisfiable", got)
	}
}
