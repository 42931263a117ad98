package sat

import "github.com/rhartert/yagh"

// DLIS (Dynamic Largest Individual Sum, §4.D) ranks each literal by its
// occurrence count in currently-unsatisfied clauses: a static per-literal
// count built at parse time, decremented when a clause satisfies and
// incremented back when it stops being satisfied. Ranking reuses the same
// yagh-backed indexed priority queue idiom as Ascending/VSIDS, keyed by
// literal id rather than variable id.
type DLIS struct {
	pool   *yagh.IntMap[float64]
	counts []float64
	n      int // highest variable seen
}

// NewDLIS returns an empty DLIS heuristic.
func NewDLIS() *DLIS {
	pool := yagh.New[float64](0)
	pool.GrowBy(2) // reserve the null variable's (unused) literal pair
	return &DLIS{
		pool:   pool,
		counts: make([]float64, 2),
	}
}

func (h *DLIS) growTo(v Variable) {
	for h.n < int(v) {
		h.n++
		h.counts = append(h.counts, 0, 0) // positive, negative literal slots
		h.pool.GrowBy(2)
		pos, neg := PositiveLiteral(Variable(h.n)), NegativeLiteral(Variable(h.n))
		h.pool.Put(int(pos), 0)
		h.pool.Put(int(neg), 0)
	}
}

func (h *DLIS) count(l Literal) float64 {
	return h.counts[l]
}

func (h *DLIS) setCount(l Literal, c float64) {
	h.counts[l] = c
	if h.pool.Contains(int(l)) {
		h.pool.Put(int(l), -c)
	}
}

// OnParsedClause builds the static occurrence count: every literal in the
// clause has its count incremented once.
func (h *DLIS) OnParsedClause(lits []Literal) {
	for _, l := range lits {
		h.growTo(l.Var())
	}
	for _, l := range lits {
		h.setCount(l, h.count(l)+1)
	}
}

func (h *DLIS) OnConflictClause(lits []Literal) {
	h.OnParsedClause(lits)
}

// OnSatisfy decrements the count of every literal in the now-satisfied
// clause, so satisfied clauses stop contributing to the ranking.
func (h *DLIS) OnSatisfy(lits []Literal) {
	for _, l := range lits {
		h.setCount(l, h.count(l)-1)
	}
}

// OnUnsatisfy restores the counts of a clause that is no longer
// satisfied.
func (h *DLIS) OnUnsatisfy(lits []Literal) {
	for _, l := range lits {
		h.setCount(l, h.count(l)+1)
	}
}

func (h *DLIS) OnAssign(v Variable) {}

// OnUnassign restores both literals of v to the ranked pool.
func (h *DLIS) OnUnassign(v Variable) {
	pos, neg := PositiveLiteral(v), NegativeLiteral(v)
	h.pool.Put(int(pos), -h.count(pos))
	h.pool.Put(int(neg), -h.count(neg))
}

// Decide pops the unassigned literal with the highest count, ties broken
// by yagh's insertion-order tie-break — literals are registered in
// ascending literal-id order exactly once in growTo, giving the total
// literal ordering tie-break §5 requires.
func (h *DLIS) Decide(p *Problem) (Literal, bool) {
	for {
		elem, ok := h.pool.Pop()
		if !ok {
			return NullLiteral, false
		}
		l := Literal(elem.Elem)
		if p.Assign.VarState(l.Var()) != Unassigned {
			continue
		}
		return l, true
	}
}

func (h *DLIS) WantsBCP() bool { return true }
