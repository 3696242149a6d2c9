package sat

// Solver is a chronological-backtracking DPLL solver: unit propagation
// via watched literals, pure-literal elimination, and a delta trail that
// unwinds assignments exactly on backtrack. It implements no clause
// learning, restarts, VSIDS, or preprocessing — see spec §1's
// non-goals.
//
// A Solver is created once and reused across Solve calls; all of its
// per-instance state is rebuilt from scratch at the start of each call.
type Solver struct {
	nVars Var
	occ   *occIndex
	table *clauseTable
	model Model

	tr      trail
	pending []Lit // the pending-decision stack; top is popped next.
	unitQ   *litQueue
	touched *resetSet
	order   *varOrder

	// Per-variable counts of currently-active clauses containing that
	// variable positively/negatively, kept in sync with clauseState.active
	// transitions so pure-literal detection is O(1) per variable checked
	// (§9's design note) rather than O(clauses).
	posActiveCount []int
	negActiveCount []int
}

// NewSolver returns a solver with no formula loaded. Call Solve to load
// and solve a CNF.
func NewSolver() *Solver {
	return &Solver{}
}

// Solve returns true iff cnf is satisfiable. It resets and reuses the
// solver's internal state; a CNF with no variables (or no clauses) is
// handled without constructing search state.
func (s *Solver) Solve(cnf CNF) bool {
	if len(cnf) == 0 {
		s.model = Model{}
		return true
	}
	if hasEmptyClause(cnf) {
		s.model = Model{}
		return false
	}

	s.init(cnf)
	return s.run(cnf)
}

// GetModel returns the mapping produced by the most recent Solve call
// that returned true. Its value is undefined after a call that returned
// false; callers must not rely on it in that case.
func (s *Solver) GetModel() Model {
	return s.model
}

func (s *Solver) init(cnf CNF) {
	s.nVars = cnf.NumVars()
	s.model = Model{}
	s.occ = buildOccIndex(cnf, s.nVars)
	s.table = newClauseTable(cnf, s.model)
	s.tr = trail{}
	s.pending = nil
	s.unitQ = newLitQueue(16)
	s.touched = newResetSet(len(cnf))
	s.order = newVarOrder(s.nVars)

	s.posActiveCount = make([]int, s.nVars+1)
	s.negActiveCount = make([]int, s.nVars+1)
	for v := Var(1); v <= s.nVars; v++ {
		s.posActiveCount[v] = len(s.occ.posOf[v])
		s.negActiveCount[v] = len(s.occ.negOf[v])
	}

	v, ok := s.order.selectUnassigned(s.model)
	if !ok {
		return // cnf.NumVars() == 0 despite non-empty clauses: unreachable in practice
	}
	s.pending = append(s.pending, PosLit(v), NegLit(v))
}

func (s *Solver) run(cnf CNF) bool {
	for len(s.pending) > 0 {
		l := s.pending[len(s.pending)-1]
		s.pending = s.pending[:len(s.pending)-1]

		if s.assign(l) {
			if !s.backtrack() {
				return false
			}
			continue
		}

		if s.allInactive() {
			s.completeModel()
			return true
		}
		if s.hasActiveEmpty() {
			if !s.backtrack() {
				return false
			}
			continue
		}
		if s.allAssigned() {
			if cnf.Eval(s.model) {
				return true
			}
			if !s.backtrack() {
				return false
			}
			continue
		}

		v, ok := s.order.selectUnassigned(s.model)
		if !ok {
			// Every variable claims to be assigned yet allAssigned() said
			// otherwise: an internal inconsistency. Spec §4.7 treats this
			// as UNSAT rather than a crash.
			return false
		}
		s.pending = append(s.pending, PosLit(v), NegLit(v))
	}
	return false
}

// assign pushes a new delta frame for l, assigns it, propagates it,
// drains the forced-unit queue, then applies pure-literal elimination.
// It returns true iff a conflict (an active empty clause) was produced.
func (s *Solver) assign(l Lit) bool {
	frame := s.tr.push(l)
	s.touched.clear()

	s.model[l.Var()] = !l.IsNegative()
	if !s.propagate(l) {
		return true
	}

	// Clauses that are unit in the input never pass through propagate's
	// watcher refresh, so a rescan of the table queues them as well.
	for i, st := range s.table.states {
		if st.unit() {
			s.unitQ.push(st.unitLit(s.table.clauses[i]))
		}
	}

	for !s.unitQ.isEmpty() {
		u := s.unitQ.pop()
		if s.model.Assigned(u.Var()) {
			// Discovered unit more than once before being forced; the
			// first discovery already forces the same literal.
			continue
		}
		frame.forced = append(frame.forced, u)
		s.model[u.Var()] = !u.IsNegative()
		if !s.propagate(u) {
			return true
		}
	}

	for {
		pv, pl, ok := s.findPureLiteral()
		if !ok {
			break
		}
		frame.forced = append(frame.forced, pl)
		s.model[pv] = !pl.IsNegative()
		s.deactivateOccurrencesOf(pl)
	}

	return false
}

// propagate updates clause states after literal l was just assigned
// true. Clauses l satisfies become inactive; clauses containing ¬l have
// their watcher refreshed if it pointed at ¬l. It returns false the
// moment an active clause is left with no watcher (a conflict),
// stopping without examining the remaining clauses of this call.
func (s *Solver) propagate(l Lit) bool {
	satisfiedBy, falsifiedBy := s.occ.occurrences(l)

	for _, i := range satisfiedBy {
		if !s.table.states[i].active {
			continue
		}
		s.storePrior(i)
		st := s.table.states[i]
		st.active = false
		s.table.states[i] = st
		s.adjustActiveCounts(i, -1)
	}

	opp := l.Negate()
	for _, i := range falsifiedBy {
		st := s.table.states[i]
		if !st.active {
			continue
		}
		s.storePrior(i)

		c := s.table.clauses[i]
		switch {
		case st.watch1 != noWatch && c[st.watch1] == opp:
			st.watch1 = findUnassigned(c, s.model, st.watch2)
		case st.watch2 != noWatch && c[st.watch2] == opp:
			st.watch2 = findUnassigned(c, s.model, st.watch1)
		}
		s.table.states[i] = st

		if st.empty() {
			return false
		}
		if st.unit() {
			s.unitQ.push(st.unitLit(c))
		}
	}

	return true
}

// storePrior records clause i's current state in the active frame, but
// only the first time it is touched within that frame (§4.5).
func (s *Solver) storePrior(i int) {
	if s.touched.contains(i) {
		return
	}
	s.touched.add(i)
	frame := s.tr.top()
	frame.priors = append(frame.priors, priorEntry{idx: i, state: s.table.states[i]})
}

// adjustActiveCounts keeps posActiveCount/negActiveCount in sync when
// clause i transitions active<->inactive (delta is -1 or +1).
func (s *Solver) adjustActiveCounts(i int, delta int) {
	c := s.table.clauses[i]
	donePos := make(map[Var]bool, len(c))
	doneNeg := make(map[Var]bool, len(c))
	for _, lit := range c {
		v := lit.Var()
		if lit.IsNegative() {
			if doneNeg[v] {
				continue
			}
			doneNeg[v] = true
			s.negActiveCount[v] += delta
		} else {
			if donePos[v] {
				continue
			}
			donePos[v] = true
			s.posActiveCount[v] += delta
		}
	}
}

// findPureLiteral returns the lowest-ID unassigned variable with exactly
// one polarity occurring in any active clause, together with that pure
// literal. Determinism (lowest ID first) matches the rest of the
// search's deterministic variable ordering.
func (s *Solver) findPureLiteral() (Var, Lit, bool) {
	for v := Var(1); v <= s.nVars; v++ {
		if s.model.Assigned(v) {
			continue
		}
		pos := s.posActiveCount[v] > 0
		neg := s.negActiveCount[v] > 0
		switch {
		case pos && !neg:
			return v, PosLit(v), true
		case neg && !pos:
			return v, NegLit(v), true
		}
	}
	return 0, 0, false
}

// deactivateOccurrencesOf marks every active clause containing pl
// inactive without propagating pl's negation, since pure-literal
// elimination guarantees no active clause contains ¬pl.
func (s *Solver) deactivateOccurrencesOf(pl Lit) {
	indices := s.occ.posOf[pl.Var()]
	if pl.IsNegative() {
		indices = s.occ.negOf[pl.Var()]
	}
	for _, i := range indices {
		if !s.table.states[i].active {
			continue
		}
		s.storePrior(i)
		st := s.table.states[i]
		st.active = false
		s.table.states[i] = st
		s.adjustActiveCounts(i, -1)
	}
}

// backtrack pops and undoes frames until the top frame's decision is the
// negation of the new top of the pending-decision stack, then undoes
// that matching frame too. It returns false if the trail empties before
// a match is found, meaning the formula is unsatisfiable.
func (s *Solver) backtrack() bool {
	for {
		if s.tr.depth() == 0 {
			s.unitQ.clear()
			return false
		}
		top := s.tr.top()
		if len(s.pending) > 0 && top.decision == s.pending[len(s.pending)-1].Negate() {
			break
		}
		s.undoFrame()
	}
	s.undoFrame()
	s.unitQ.clear()
	return true
}

// undoFrame pops the top trail frame, unassigns its decision and every
// forced literal, and restores every clause state it recorded a prior
// for.
func (s *Solver) undoFrame() {
	f := s.tr.pop()

	delete(s.model, f.decision.Var())
	s.order.restore(f.decision.Var())
	for _, l := range f.forced {
		delete(s.model, l.Var())
		s.order.restore(l.Var())
	}

	for _, p := range f.priors {
		old := s.table.states[p.idx]
		s.table.states[p.idx] = p.state
		if !old.active {
			// p.state.active is always true: storePrior only ever records
			// a clause that was active at the time of recording.
			s.adjustActiveCounts(p.idx, 1)
		}
	}
}

func (s *Solver) allInactive() bool {
	for _, st := range s.table.states {
		if st.active {
			return false
		}
	}
	return true
}

func (s *Solver) hasActiveEmpty() bool {
	for _, st := range s.table.states {
		if st.empty() {
			return true
		}
	}
	return false
}

func (s *Solver) allAssigned() bool {
	return Var(len(s.model)) == s.nVars
}

// completeModel assigns false to every variable left unassigned once
// every clause has been satisfied (§4.6: pure-literal assignment can
// leave a variable unassigned if it never appears in any clause that
// still needed deciding).
func (s *Solver) completeModel() {
	for v := Var(1); v <= s.nVars; v++ {
		if !s.model.Assigned(v) {
			s.model[v] = false
		}
	}
}
