package sat

import "github.com/rhartert/yagh"

// Ascending is the simplest concrete Heuristic (§4.D): it always picks the
// unassigned variable of highest index, decided On. Ranking is an
// indexed priority queue keyed by variable id (negated, since yagh pops
// the minimum) — the teacher's own ordering trick from ordering.go,
// applied here to plain variable indices instead of VSIDS activities.
type Ascending struct {
	pool *yagh.IntMap[float64]
	n    int
}

// NewAscending returns an empty Ascending heuristic.
func NewAscending() *Ascending {
	pool := yagh.New[float64](0)
	pool.GrowBy(1) // reserve the null variable's (unused) slot
	return &Ascending{pool: pool}
}

func (h *Ascending) growTo(v Variable) {
	for h.n < int(v) {
		h.n++
		h.pool.GrowBy(1)
		h.pool.Put(h.n, -float64(h.n))
	}
}

// OnParsedClause registers every variable in the clause, if not already
// known.
func (h *Ascending) OnParsedClause(lits []Literal) {
	for _, l := range lits {
		h.growTo(l.Var())
	}
}

func (h *Ascending) OnConflictClause(lits []Literal) {}
func (h *Ascending) OnSatisfy(lits []Literal)         {}
func (h *Ascending) OnUnsatisfy(lits []Literal)       {}
func (h *Ascending) OnAssign(v Variable)              {}

// OnUnassign restores v to the ranked pool.
func (h *Ascending) OnUnassign(v Variable) {
	h.pool.Put(int(v), -float64(v))
}

// Decide pops the highest-index unassigned variable, discarding stale
// (already-assigned) entries lazily as it goes.
func (h *Ascending) Decide(p *Problem) (Literal, bool) {
	for {
		elem, ok := h.pool.Pop()
		if !ok {
			return NullLiteral, false
		}
		v := Variable(elem.Elem)
		if p.Assign.VarState(v) != Unassigned {
			continue
		}
		return PositiveLiteral(v), true
	}
}

func (h *Ascending) WantsBCP() bool { return true }
