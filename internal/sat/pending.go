package sat

// PendingClauseSet is the worklist of clause ids awaiting BCP inspection
// (§3 Problem, §9 Design Notes: "deduplication of ids is required... use
// ascending id" for determinism). It pairs the teacher's generic ring
// buffer (Queue[ClauseID]) with a ResetSet dedup bitset so a clause
// watched by two newly-Unsat literals in the same wave is only inspected
// once; ascending order falls out naturally because clauses are recorded
// into LiteralInfo, and therefore enqueued from it, in parse (ascending
// id) order.
type PendingClauseSet struct {
	order  *Queue[ClauseID]
	member *ResetSet
}

// NewPendingClauseSet returns an empty set sized for clause ids in
// [0, clauseCapacity).
func NewPendingClauseSet(clauseCapacity int) *PendingClauseSet {
	return &PendingClauseSet{
		order:  NewQueue[ClauseID](clauseCapacity + 1),
		member: NewResetSet(clauseCapacity),
	}
}

// Add enqueues id if it is not already pending.
func (p *PendingClauseSet) Add(id ClauseID) {
	if p.member.Contains(int(id)) {
		return
	}
	p.member.Add(int(id))
	p.order.Push(id)
}

// IsEmpty reports whether there is nothing left to inspect.
func (p *PendingClauseSet) IsEmpty() bool {
	return p.order.IsEmpty()
}

// Pop removes and returns the oldest pending clause id.
func (p *PendingClauseSet) Pop() ClauseID {
	id := p.order.Pop()
	p.member.Remove(int(id))
	return id
}

// Clear empties the set, e.g. on chronological backtrack (§4.F: "the
// assignments that produced any pending member are now invalidated").
func (p *PendingClauseSet) Clear() {
	p.order.Clear()
	p.member.Clear()
}

// Expand grows the set's capacity to accommodate one more clause id.
func (p *PendingClauseSet) Expand() {
	p.member.Expand()
}
