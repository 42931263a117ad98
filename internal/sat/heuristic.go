package sat

// Heuristic is the decision-ordering capability the search driver
// consumes (§4.D). Implementations must treat OnAssign/OnUnassign as
// authoritative for their own ranking bookkeeping: the driver calls them
// on every variable assignment and unassignment, free or forced.
type Heuristic interface {
	// OnParsedClause is called once per input clause by NewSolver, before
	// the search begins.
	OnParsedClause(lits []Literal)

	// OnConflictClause lets a heuristic react to an unsat clause witness
	// (no clauses are ever learned). The search driver in this package
	// does not call it; only the heuristics themselves define what it does.
	OnConflictClause(lits []Literal)

	// OnSatisfy and OnUnsatisfy are called on every assignment, once for
	// each clause containing the newly-true literal (OnSatisfy) and once
	// for each clause containing the newly-false literal (OnUnsatisfy).
	// The calls are not gated on the clause's derived state changing.
	OnSatisfy(lits []Literal)
	OnUnsatisfy(lits []Literal)

	// OnAssign and OnUnassign are lifecycle hooks for ranking bookkeeping.
	OnAssign(v Variable)
	OnUnassign(v Variable)

	// Decide returns a literal whose variable is Unassigned, or
	// (NullLiteral, false) if none remains. Returning an already-assigned
	// variable is a contract violation.
	Decide(p *Problem) (Literal, bool)

	// WantsBCP reports whether the search driver should maintain the
	// watched-literal invariant (true) or fall back to full clause
	// rescans after each assignment (false).
	WantsBCP() bool
}
