package sat

import "github.com/rhartert/yagh"

// varOrder chooses the next branching variable. Spec §4.6 only requires
// "the first unassigned variable in iteration order... any deterministic
// choice suffices" — no activity heuristic is needed for correctness.
// Rescanning every variable on every decision is O(vars) per decision
// though, so unassigned variable IDs are kept in a min-heap keyed by
// their own ID: popping the minimum always yields the same variable a
// linear ascending scan would, in O(log vars) instead of O(vars).
//
// This mirrors yass's VarOrder (also yagh-backed), with the
// activity/VSIDS and phase-saving machinery dropped — they exist to
// guide conflict-driven search, which is out of scope here.
type varOrder struct {
	heap *yagh.IntMap[int]
}

func newVarOrder(nVars Var) *varOrder {
	// Variable IDs are 1-indexed (DIMACS convention) and run up to and
	// including nVars, so the heap needs capacity nVars+1 to admit key
	// nVars itself (yagh.New(n) only accepts keys in [0, n)).
	h := yagh.New[int](int(nVars) + 1)
	for v := 1; v <= int(nVars); v++ {
		h.Put(v, v)
	}
	return &varOrder{heap: h}
}

// restore makes v selectable again. Used when a variable is unassigned
// by backtracking; it is a no-op if v is already in the heap (as for a
// forced variable that selectUnassigned has not yet popped and dropped).
func (vo *varOrder) restore(v Var) {
	if !vo.heap.Contains(int(v)) {
		vo.heap.Put(int(v), int(v))
	}
}

// selectUnassigned pops and returns the lowest-ID variable not yet
// assigned in m, or ok=false if every variable is assigned.
func (vo *varOrder) selectUnassigned(m Model) (v Var, ok bool) {
	for {
		next, popped := vo.heap.Pop()
		if !popped {
			return 0, false
		}
		if cand := Var(next.Elem); !m.Assigned(cand) {
			return cand, true
		}
		// Already assigned: it will be restored by undo if it becomes
		// unassigned again, so it is safe to drop here.
	}
}
