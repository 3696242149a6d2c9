package sat

// resetSet represents a set of clause indices from 0 to N-1 (N being the
// number of clauses in the formula) that can be fully cleared in
// constant time. It is used to track, within the current decision
// frame, which clauses already have a prior state recorded — so that a
// clause mutated twice within the same frame only contributes the
// oldest prior to the delta.
type resetSet struct {
	touchedAt []uint32
	frameID   uint32
}

// newResetSet returns a resetSet sized for n clause indices.
func newResetSet(n int) *resetSet {
	return &resetSet{touchedAt: make([]uint32, n)}
}

// contains reports whether i has been added since the last clear.
func (rs *resetSet) contains(i int) bool {
	return rs.touchedAt[i] == rs.frameID
}

// add marks i as touched for the current frame.
func (rs *resetSet) add(i int) {
	rs.touchedAt[i] = rs.frameID
}

// clear empties the set in O(1), ready for the next frame.
func (rs *resetSet) clear() {
	rs.frameID++
	if rs.frameID == 0 { // overflow, reset the stamps
		rs.frameID = 1
		for i := range rs.touchedAt {
			rs.touchedAt[i] = 0
		}
	}
}
