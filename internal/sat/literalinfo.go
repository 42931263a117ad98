package sat

// LiteralInfo is the per-literal auxiliary index (§3): for each literal,
// the (non-owning) list of clause ids in which it appears. The clause
// store is the sole owner of Clause objects; LiteralInfo only ever holds
// indices into it.
type LiteralInfo struct {
	occursIn [][]ClauseID
}

// NewLiteralInfo returns a LiteralInfo sized for literals of variables
// 0..capacity (inclusive of the null variable's slot).
func NewLiteralInfo(capacity int) *LiteralInfo {
	// two literals per variable, plus room for variable 0 (unused).
	return &LiteralInfo{occursIn: make([][]ClauseID, 2*(capacity+1))}
}

// Expand grows the index to cover one more variable.
func (li *LiteralInfo) Expand() {
	li.occursIn = append(li.occursIn, nil, nil)
}

// Record adds id to the list of clauses containing l.
func (li *LiteralInfo) Record(l Literal, id ClauseID) {
	li.occursIn[l] = append(li.occursIn[l], id)
}

// ClausesWith returns every clause id containing l, in the order they
// were recorded (parse order, per §9).
func (li *LiteralInfo) ClausesWith(l Literal) []ClauseID {
	return li.occursIn[l]
}
