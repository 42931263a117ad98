package sat

// OutcomeKind classifies the result of examining one clause for a
// substitute watch (§4.E).
type OutcomeKind int8

const (
	FoundSubstitute OutcomeKind = iota
	ClauseIsSat
	ForcedAssignment
	UnitClauseUnsat
)

// Outcome is the result of TrySubstituteWatch. Literal is only
// meaningful when Kind == ForcedAssignment.
type Outcome struct {
	Kind    OutcomeKind
	Literal Literal
}

// TrySubstituteWatch examines one clause whose watch was just falsified
// (§4.E, the per-clause examination algorithm). It does not know which
// watch triggered the call — it re-derives both watch states fresh, so
// it is safe to call speculatively.
func TrySubstituteWatch(p *Problem, c *Clause) Outcome {
	for _, l := range c.Literals() {
		if p.Assign.LitState(l) == Sat {
			return Outcome{Kind: ClauseIsSat}
		}
	}

	w0, w1 := c.Watches()
	s0, s1 := p.Assign.LitState(w0), p.Assign.LitState(w1)

	var freedSlot int
	var survivor Literal
	switch {
	case s0 == Unsat && s1 == Unknown:
		freedSlot, survivor = 0, w1
	case s0 == Unknown && s1 == Unsat:
		freedSlot, survivor = 1, w0
	case s0 == Sat || s1 == Sat:
		return Outcome{Kind: ClauseIsSat}
	default:
		panic("sat: both watches unsat before substitution was attempted")
	}

	for _, l := range c.Literals() {
		if l == w0 || l == w1 {
			continue
		}
		if p.Assign.LitState(l) == Unknown {
			c.SetWatch(freedSlot, l)
			return Outcome{Kind: FoundSubstitute}
		}
	}

	if survivor.IsNull() {
		return Outcome{Kind: UnitClauseUnsat}
	}
	return Outcome{Kind: ForcedAssignment, Literal: survivor}
}

// drainPending repeatedly pops the pending-clause queue, examining each
// clause with TrySubstituteWatch and folding ForcedAssignment results
// into implied. Returns false on the first conflict (a UnitClauseUnsat,
// or two incompatible forced assignments to the same variable).
func drainPending(p *Problem, implied *ImpliedSet) bool {
	for !p.Pending.IsEmpty() {
		id := p.Pending.Pop()
		c := p.Clauses.Get(id)
		switch outcome := TrySubstituteWatch(p, c); outcome.Kind {
		case FoundSubstitute, ClauseIsSat:
			// nothing further to do for this clause this round.
		case ForcedAssignment:
			v, pol := outcome.Literal.Var(), outcome.Literal.Polarity()
			if implied.Contains(v) && implied.ValueOf(v) != pol {
				return false
			}
			implied.Push(v, pol, id)
		case UnitClauseUnsat:
			return false
		}
	}
	return true
}

// updateAfterAssignment sets (v,p)'s literal to Sat and (v,¬p)'s to Unsat
// (§4.E), notifies the heuristic of every clause containing either
// literal, and — only when BCP is enabled and that clause is currently
// watching the newly-falsified literal (or unconditionally when BCP is
// disabled) — re-enqueues it onto the pending set.
func updateAfterAssignment(p *Problem, h Heuristic, v Variable, pol Polarity, useBCP bool) {
	p.Assign.Assign(v, pol)

	sat := literalOf(v, pol)
	unsat := sat.Opposite()

	for _, id := range p.Info.ClausesWith(sat) {
		h.OnSatisfy(p.Clauses.Get(id).Literals())
	}

	for _, id := range p.Info.ClausesWith(unsat) {
		c := p.Clauses.Get(id)
		h.OnUnsatisfy(c.Literals())
		if useBCP {
			w0, w1 := c.Watches()
			if w0 == unsat || w1 == unsat {
				p.Pending.Add(id)
			}
		} else {
			p.Pending.Add(id)
		}
	}
}

// rescanAllClauses is the §4.F non-BCP fallback: recompute every
// pending clause's derived state from its literals and report whether
// any is Unsatisfiable. Grounded directly in
// original_source/src/sat_solver/dpll.rs's update_literal_info_and_clauses.
func rescanAllClauses(p *Problem) bool {
	ok := true
	for !p.Pending.IsEmpty() {
		id := p.Pending.Pop()
		if clauseState(p, p.Clauses.Get(id)) == Unsatisfiable {
			ok = false
		}
	}
	return ok
}

// clauseState derives a clause's state from its literals' current states
// (§3: "Satisfied iff any literal is Sat; Unsatisfiable iff all literals
// are Unsat; else Unresolved").
func clauseState(p *Problem, c *Clause) ClauseState {
	anyUnknown := false
	for _, l := range c.Literals() {
		switch p.Assign.LitState(l) {
		case Sat:
			return Satisfied
		case Unknown:
			anyUnknown = true
		}
	}
	if anyUnknown {
		return Unresolved
	}
	return Unsatisfiable
}
