package sat

// AssignmentIndex maps each variable to its current VariableState and each
// literal to its derived LiteralState (§4.C). It is the only component
// allowed to mutate either table; everything else (BCP, the search
// driver) goes through its accessors so the "literal/variable state"
// invariants in §3 stay centrally enforced.
type AssignmentIndex struct {
	varState []VariableState
	litState []LiteralState
}

// NewAssignmentIndex returns an index sized for variables 0..capacity.
func NewAssignmentIndex(capacity int) *AssignmentIndex {
	return &AssignmentIndex{
		varState: make([]VariableState, capacity+1),
		litState: make([]LiteralState, 2*(capacity+1)),
	}
}

// Expand grows the index to cover one more variable.
func (ai *AssignmentIndex) Expand() {
	ai.varState = append(ai.varState, Unassigned)
	ai.litState = append(ai.litState, Unknown, Unknown)
}

// VarState returns the current state of v.
func (ai *AssignmentIndex) VarState(v Variable) VariableState {
	return ai.varState[v]
}

// LitState returns the current state of l.
func (ai *AssignmentIndex) LitState(l Literal) LiteralState {
	return ai.litState[l]
}

// MarkAssigned transitions v to Assigned. Panics if v is already Assigned
// (§4.C: "mark_assigned requires current state Unassigned").
func (ai *AssignmentIndex) MarkAssigned(v Variable) {
	if ai.varState[v] != Unassigned {
		panic("sat: mark_assigned on an already-assigned variable")
	}
	ai.varState[v] = Assigned
}

// MarkUnassigned transitions v to Unassigned. Panics if v is not
// currently Assigned.
func (ai *AssignmentIndex) MarkUnassigned(v Variable) {
	if ai.varState[v] != Assigned {
		panic("sat: mark_unassigned on a non-assigned variable")
	}
	ai.varState[v] = Unassigned
}

// SetLiteralState sets l's derived state directly. The caller (BCP's
// updateAfterAssignment) is responsible for honoring the cause-keyed
// preconditions described in §4.E.
func (ai *AssignmentIndex) SetLiteralState(l Literal, s LiteralState) {
	ai.litState[l] = s
}

// Assign sets (v,p)'s literal to Sat and (v,¬p)'s literal to Unsat and
// marks v Assigned, in one step — the common case used by both free
// decisions and forced assignments.
func (ai *AssignmentIndex) Assign(v Variable, p Polarity) {
	ai.MarkAssigned(v)
	lit := literalOf(v, p)
	ai.SetLiteralState(lit, Sat)
	ai.SetLiteralState(lit.Opposite(), Unsat)
}

// Unassign reverts v to Unassigned and both of its literals to Unknown.
func (ai *AssignmentIndex) Unassign(v Variable) {
	ai.MarkUnassigned(v)
	lit := literalOf(v, On)
	ai.SetLiteralState(lit, Unknown)
	ai.SetLiteralState(lit.Opposite(), Unknown)
}

func literalOf(v Variable, p Polarity) Literal {
	if p == On {
		return PositiveLiteral(v)
	}
	return NegativeLiteral(v)
}
