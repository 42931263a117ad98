// Package verify checks a candidate model against a problem's original
// clauses, independently of whatever search produced it. It exists so the
// CLI's "--check --satisfiable" flag pair has something to check against
// that does not share any state with the solver under test, mirroring the
// teacher's own TestSolveAll pattern of validating models against the
// parsed clauses rather than trusting the solver that produced them.
package verify

import "github.com/gosat/yass/internal/sat"

// Verify reports whether model satisfies every clause of p. model need not
// assign every variable; an unassigned literal is treated as Unknown, not
// satisfying, matching sat.LiteralState semantics.
func Verify(p *sat.Problem, model map[sat.Variable]sat.Polarity) bool {
	for _, c := range p.Clauses.All() {
		if !clauseSatisfied(c, model) {
			return false
		}
	}
	return true
}

func clauseSatisfied(c *sat.Clause, model map[sat.Variable]sat.Polarity) bool {
	for _, l := range c.Literals() {
		pol, ok := model[l.Var()]
		if ok && pol == l.Polarity() {
			return true
		}
	}
	return false
}
