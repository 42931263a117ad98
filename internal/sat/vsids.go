package sat

import "github.com/rhartert/yagh"

// VSIDS (Variable State Independent Decaying Sum, §4.D) ranks each
// literal by a score bumped on every clause addition (parsed or
// conflict) by the current iteration counter, which itself advances by
// one per Decide call. There is no periodic decay in this design — score
// inflation alone makes recently-added clauses dominate the ranking, per
// the spec's explicit framing of the observable effect.
type VSIDS struct {
	pool      *yagh.IntMap[float64]
	scores    []float64
	n         int
	iteration float64
}

// NewVSIDS returns an empty VSIDS heuristic.
func NewVSIDS() *VSIDS {
	pool := yagh.New[float64](0)
	pool.GrowBy(2) // reserve the null variable's (unused) literal pair
	return &VSIDS{
		pool:      pool,
		scores:    make([]float64, 2),
		iteration: 1,
	}
}

func (h *VSIDS) growTo(v Variable) {
	for h.n < int(v) {
		h.n++
		h.scores = append(h.scores, 0, 0)
		h.pool.GrowBy(2)
		pos, neg := PositiveLiteral(Variable(h.n)), NegativeLiteral(Variable(h.n))
		h.pool.Put(int(pos), 0)
		h.pool.Put(int(neg), 0)
	}
}

func (h *VSIDS) bump(l Literal, by float64) {
	h.scores[l] += by
	if h.pool.Contains(int(l)) {
		h.pool.Put(int(l), -h.scores[l])
	}
}

// OnParsedClause grows the tables for any new variable, then bumps every
// literal in the clause by the current iteration count.
func (h *VSIDS) OnParsedClause(lits []Literal) {
	for _, l := range lits {
		h.growTo(l.Var())
	}
	for _, l := range lits {
		h.bump(l, h.iteration)
	}
}

// OnConflictClause bumps scores the same way a parsed clause would — no
// learned clauses exist in this design, but a detected unsat clause is
// still a signal the heuristic reacts to.
func (h *VSIDS) OnConflictClause(lits []Literal) {
	h.OnParsedClause(lits)
}

func (h *VSIDS) OnSatisfy(lits []Literal)   {}
func (h *VSIDS) OnUnsatisfy(lits []Literal) {}
func (h *VSIDS) OnAssign(v Variable)        {}

// OnUnassign restores both literals of v to the ranked pool.
func (h *VSIDS) OnUnassign(v Variable) {
	pos, neg := PositiveLiteral(v), NegativeLiteral(v)
	h.pool.Put(int(pos), -h.scores[pos])
	h.pool.Put(int(neg), -h.scores[neg])
}

// Decide advances the iteration counter, then pops the unassigned literal
// with the highest score.
func (h *VSIDS) Decide(p *Problem) (Literal, bool) {
	h.iteration++
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

func (h *VSIDS) WantsBCP() bool { return true }
