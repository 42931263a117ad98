package sat

// ResetSet is a set of small integers (clause or variable ids) that supports
// O(1) Clear regardless of how many elements were added, via a generation
// timestamp. Used by PendingClauseSet to dedup clause ids on the BCP
// worklist without walking the whole ring buffer.
type ResetSet struct {
	stampOf []uint16
	stamp   uint16
}

// NewResetSet returns a ResetSet with room for ids in [0, capacity).
func NewResetSet(capacity int) *ResetSet {
	return &ResetSet{stampOf: make([]uint16, capacity), stamp: 1}
}

// Contains returns true if id is currently in the set.
func (rs *ResetSet) Contains(id int) bool {
	return rs.stampOf[id] == rs.stamp
}

// Add puts id in the set.
func (rs *ResetSet) Add(id int) {
	rs.stampOf[id] = rs.stamp
}

// Remove takes id out of the set.
func (rs *ResetSet) Remove(id int) {
	if rs.stampOf[id] == rs.stamp {
		rs.stampOf[id] = rs.stamp - 1
	}
}

// Clear empties the set in constant time.
func (rs *ResetSet) Clear() {
	rs.stamp++
	if rs.stamp == 0 { // wrapped around
		rs.stamp = 1
		for i := range rs.stampOf {
			rs.stampOf[i] = 0
		}
	}
}

// Expand grows the set's capacity by one id.
func (rs *ResetSet) Expand() {
	rs.stampOf = append(rs.stampOf, 0)
}

// ImpliedSet is the BCP propagation driver's "newly implied" structure
// (spec §4.E): a FIFO of variables forced by unit clauses, each tagged with
// the polarity it was forced to, plus O(1) membership testing so the same
// variable is never enqueued twice in the same propagation round. It reuses
// the generation-stamp trick above, but carries a value (the forced
// Polarity) alongside membership, and a Queue[Variable] gives the
// deterministic pop order BCP needs (oldest-implied-first).
type ImpliedSet struct {
	stampOf   []uint16
	valueOf   []Polarity
	witnessOf []ClauseID
	stamp     uint16
	order     *Queue[Variable]
}

// NewImpliedSet returns an ImpliedSet with room for variables in
// [0, capacity).
func NewImpliedSet(capacity int) *ImpliedSet {
	return &ImpliedSet{
		stampOf:   make([]uint16, capacity),
		valueOf:   make([]Polarity, capacity),
		witnessOf: make([]ClauseID, capacity),
		stamp:     1,
		order:     NewQueue[Variable](capacity),
	}
}

// Contains reports whether v has already been recorded as implied in the
// current round.
func (is *ImpliedSet) Contains(v Variable) bool {
	return is.stampOf[v] == is.stamp
}

// ValueOf returns the polarity v was implied to, if Contains(v).
func (is *ImpliedSet) ValueOf(v Variable) Polarity {
	return is.valueOf[v]
}

// Push records v as newly implied to polarity p by the clause witness and
// enqueues it for propagation. It is a no-op if v is already recorded
// this round, matching the invariant that a variable is forced at most
// once per round.
func (is *ImpliedSet) Push(v Variable, p Polarity, witness ClauseID) {
	if is.Contains(v) {
		return
	}
	is.stampOf[v] = is.stamp
	is.valueOf[v] = p
	is.witnessOf[v] = witness
	is.order.Push(v)
}

// IsEmpty reports whether there is no variable left to propagate.
func (is *ImpliedSet) IsEmpty() bool {
	return is.order.IsEmpty()
}

// Pop removes and returns the oldest implied variable along with its
// forced polarity and witnessing clause.
func (is *ImpliedSet) Pop() (Variable, Polarity, ClauseID) {
	v := is.order.Pop()
	return v, is.valueOf[v], is.witnessOf[v]
}

// Clear empties the set in constant time, ready for the next propagation
// round (e.g. after a backtrack).
func (is *ImpliedSet) Clear() {
	is.order.Clear()
	is.stamp++
	if is.stamp == 0 {
		is.stamp = 1
		for i := range is.stampOf {
			is.stampOf[i] = 0
		}
	}
}
