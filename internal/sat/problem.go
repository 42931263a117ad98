package sat

// Problem is the aggregate described in §3: clauses, the per-literal
// LiteralInfo back-reference table, the live assignment, and the
// pending-clause worklist. It is mutated by exactly one logical agent at
// a time (the search driver or the BCP engine it invokes), per §5.
type Problem struct {
	Clauses *ClauseStore
	Info    *LiteralInfo
	Assign  *AssignmentIndex
	Pending *PendingClauseSet
	numVars int
}

// NewProblem returns an empty Problem sized for 0 variables; variables
// are added lazily via EnsureVariable as clauses are parsed.
func NewProblem() *Problem {
	return &Problem{
		Clauses: NewClauseStore(),
		Info:    NewLiteralInfo(0),
		Assign:  NewAssignmentIndex(0),
		Pending: NewPendingClauseSet(0),
	}
}

// NumVars returns the highest variable index seen so far.
func (p *Problem) NumVars() int {
	return p.numVars
}

// EnsureVariable grows every per-variable table so variable v is valid to
// reference, if it is not already. Mirrors the DIMACS reader's lazy
// variable discovery (§6).
func (p *Problem) EnsureVariable(v Variable) {
	for p.numVars < int(v) {
		p.numVars++
		p.Info.Expand()
		p.Assign.Expand()
	}
}

// AddClause registers lits as a new clause: grows variable tables as
// needed, stores the clause, records it against every one of its
// literals in LiteralInfo (§3: "the set of clauses in which that literal
// appears" — not just the watched two, since the --no-bcp fallback walks
// every occurrence), and returns its id. lits must be non-empty (an
// empty clause is a parse-time error, handled by the caller before this
// point).
func (p *Problem) AddClause(lits []Literal) ClauseID {
	for _, l := range lits {
		p.EnsureVariable(l.Var())
	}
	id := p.Clauses.Add(lits)
	for _, l := range lits {
		p.Info.Record(l, id)
	}
	p.Pending.Expand()
	return id
}
