package sat

// Verdict is the solver's final answer (§4.F, §7).
type Verdict int8

const (
	UNSAT Verdict = iota
	SAT
	BudgetExhausted
)

func (v Verdict) String() string {
	switch v {
	case SAT:
		return "SAT"
	case UNSAT:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Stats tracks search progress for the "c ..." summary lines the CLI
// prints, in the teacher's own printSearchStats idiom.
type Stats struct {
	Decisions    int
	Propagations int
	Backtracks   int
}

// Solver is the DPLL search driver (§4.F): decision/propagate/backtrack
// loop, unit-clause preprocessing, and chronological backtracking. It
// has no clause-learning or non-chronological jump machinery — those are
// explicit non-goals.
type Solver struct {
	Problem   *Problem
	Heuristic Heuristic
	Stack     *SolutionStack

	implied *ImpliedSet
	useBCP  bool

	maxSteps  int // 0 means unbounded
	stepCount int

	Stats Stats
}

// NewSolver returns a Solver ready to search p with h. maxSteps bounds
// the number of decisions taken before the search gives up with
// BudgetExhausted (§5: "an implementer may add a step-count budget");
// 0 means unbounded.
func NewSolver(p *Problem, h Heuristic, maxSteps int) *Solver {
	for _, c := range p.Clauses.All() {
		h.OnParsedClause(c.Literals())
	}
	return &Solver{
		Problem:   p,
		Heuristic: h,
		Stack:     NewSolutionStack(),
		implied:   NewImpliedSet(p.NumVars() + 1),
		maxSteps:  maxSteps,
	}
}

// Solve runs the DPLL loop to completion and returns the verdict and, if
// SAT, the stack recording every assigned variable.
func (s *Solver) Solve() (Verdict, *SolutionStack) {
	s.useBCP = s.Heuristic.WantsBCP()

	if !s.preprocessUnitClauses() {
		return UNSAT, nil
	}

	for {
		if s.budgetExhausted() {
			return BudgetExhausted, nil
		}

		lit, ok := s.Heuristic.Decide(s.Problem)
		if !ok {
			return SAT, s.Stack
		}
		v, pol := lit.Var(), lit.Polarity()
		if s.Problem.Assign.VarState(v) != Unassigned {
			panic("sat: heuristic decided an already-assigned variable")
		}

		s.stepCount++
		s.Stats.Decisions++
		s.Stack.PushFreeFirstTry(v, pol)
		s.Heuristic.OnAssign(v)
		updateAfterAssignment(s.Problem, s.Heuristic, v, pol, s.useBCP)

		if !s.resolveUntilQuiet() {
			return UNSAT, nil
		}
	}
}

func (s *Solver) budgetExhausted() bool {
	return s.maxSteps > 0 && s.stepCount >= s.maxSteps
}

// preprocessUnitClauses scans every length-one clause, collects the
// literals they imply, and applies them before search begins (§4.F). A
// variable implied with both polarities makes the problem UNSAT outright.
func (s *Solver) preprocessUnitClauses() bool {
	implied := map[Variable]Polarity{}
	order := make([]Variable, 0)

	for _, c := range s.Problem.Clauses.All() {
		if c.Len() != 1 {
			continue
		}
		l := c.Literals()[0]
		v, pol := l.Var(), l.Polarity()
		if existing, ok := implied[v]; ok {
			if existing != pol {
				return false
			}
			continue
		}
		implied[v] = pol
		order = append(order, v)
	}

	for _, v := range order {
		if s.Problem.Assign.VarState(v) != Unassigned {
			continue
		}
		pol := implied[v]
		s.Stack.PushStep(v, pol, ForcedByUnitClause, 0)
		s.Heuristic.OnAssign(v)
		updateAfterAssignment(s.Problem, s.Heuristic, v, pol, s.useBCP)
		if !s.resolveUntilQuiet() {
			return false
		}
	}
	return true
}

// resolveUntilQuiet drives propagation to a fixed point, backtracking on
// conflict, per §4.F. In BCP mode it alternates draining the pending
// queue and popping forced assignments off implied; in --no-bcp mode it
// repeatedly rescans every pending clause's derived state.
func (s *Solver) resolveUntilQuiet() bool {
	if s.useBCP {
		for {
			if !drainPending(s.Problem, s.implied) {
				s.implied.Clear()
				if !s.backtrack() {
					return false
				}
				continue
			}
			if s.implied.IsEmpty() {
				return true
			}
			v, pol, witness := s.implied.Pop()
			s.Stack.PushStep(v, pol, ForcedByBCP, witness)
			s.Heuristic.OnAssign(v)
			updateAfterAssignment(s.Problem, s.Heuristic, v, pol, true)
			s.Stats.Propagations++
		}
	}

	for {
		if rescanAllClauses(s.Problem) {
			return true
		}
		if !s.backtrack() {
			return false
		}
	}
}

// backtrack performs chronological backtracking (§4.F): find the latest
// FreeFirstTry step, undo everything after it, then flip its polarity
// into a FreeSecondTry and re-propagate from there. Returns false if no
// FreeFirstTry step exists (search failure is final).
func (s *Solver) backtrack() bool {
	target := s.Stack.LastFreeFirstTry()
	if target < 0 {
		return false
	}
	s.Stats.Backtracks++

	for i := s.Stack.Len() - 1; i > target; i-- {
		step := s.Stack.At(i)
		s.Problem.Assign.Unassign(step.Var)
		s.Heuristic.OnUnassign(step.Var)
	}
	s.Stack.TruncateTo(target + 1)
	s.Problem.Pending.Clear()

	step := s.Stack.At(target)
	newPol := step.Pol.Opposite()
	s.Stack.SetPolarity(target, newPol)
	s.Stack.SetKind(target, FreeSecondTry)

	s.Problem.Assign.Unassign(step.Var)
	s.Heuristic.OnUnassign(step.Var)
	s.Heuristic.OnAssign(step.Var)
	updateAfterAssignment(s.Problem, s.Heuristic, step.Var, newPol, s.useBCP)

	return true
}

// Model extracts the satisfying assignment from a completed SAT stack as a
// map from variable to polarity. The map has no order; callers that print
// it (§6: "variables appear in ascending index order") iterate the
// variables themselves.
func Model(p *Problem, stack *SolutionStack) map[Variable]Polarity {
	m := make(map[Variable]Polarity, stack.Len())
	for i := 0; i < stack.Len(); i++ {
		step := stack.At(i)
		m[step.Var] = step.Pol
	}
	return m
}
