package sat

// Clause is an ordered sequence of literals, immutable once built: a
// clause is satisfied iff at least one of its literals evaluates true
// under the model. An empty clause is unsatisfiable.
type Clause []Lit

// Eval reports whether the clause is satisfied under m. It returns true
// iff some literal is assigned in m and evaluates true; a clause with an
// unassigned literal and no satisfied literal is unresolved rather than
// falsified, but both cases return false here — callers needing to tell
// them apart must walk c themselves.
func (c Clause) Eval(m Model) bool {
	for _, l := range c {
		if v, ok := m[l.Var()]; ok && (v != l.IsNegative()) {
			return true
		}
	}
	return false
}

// CNF is an ordered sequence of clauses: a conjunction of disjunctions.
// An empty CNF is trivially satisfied.
type CNF []Clause

// Eval reports whether every clause in the CNF is satisfied under m.
func (f CNF) Eval(m Model) bool {
	for _, c := range f {
		if !c.Eval(m) {
			return false
		}
	}
	return true
}

// NumVars returns the highest variable identity occurring in the
// formula; callers needing a slice size to index variables 1..n must
// add 1 themselves.
func (f CNF) NumVars() Var {
	var max Var
	for _, c := range f {
		for _, l := range c {
			if v := l.Var(); v > max {
				max = v
			}
		}
	}
	return max
}

// Model is a partial mapping from variables to boolean values. A
// variable is "assigned" iff it is present in the map.
type Model map[Var]bool

// Assigned reports whether v has a value in m.
func (m Model) Assigned(v Var) bool {
	_, ok := m[v]
	return ok
}
