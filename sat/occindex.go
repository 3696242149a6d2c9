package sat

// occIndex is, for every variable, the set of clause indices in which it
// occurs positively and the set in which it occurs negatively. It is
// built once at solver initialization by scanning every clause and is
// never mutated afterward.
type occIndex struct {
	// posOf[v] lists the clauses containing literal (v, false).
	posOf [][]int
	// negOf[v] lists the clauses containing literal (v, true).
	negOf [][]int
}

// buildOccIndex scans cnf once and returns the occurrence index sized
// for variables 1..nVars inclusive. A variable occurring with both
// polarities in the same clause is listed in both posOf[v] and negOf[v],
// but the same clause index is never repeated within one side even if
// the literal itself repeats in the clause.
func buildOccIndex(cnf CNF, nVars Var) *occIndex {
	idx := &occIndex{
		posOf: make([][]int, nVars+1),
		negOf: make([][]int, nVars+1),
	}

	seenPos := map[Var]int{}
	seenNeg := map[Var]int{}
	for i, c := range cnf {
		for _, l := range c {
			v := l.Var()
			if l.IsNegative() {
				if seenNeg[v] == i+1 {
					continue
				}
				seenNeg[v] = i + 1
				idx.negOf[v] = append(idx.negOf[v], i)
			} else {
				if seenPos[v] == i+1 {
					continue
				}
				seenPos[v] = i + 1
				idx.posOf[v] = append(idx.posOf[v], i)
			}
		}
	}

	return idx
}

// occurrences returns the clause indices satisfied by l (same side) and
// the clause indices containing ¬l (other side), matching §4.4's S and T.
func (idx *occIndex) occurrences(l Lit) (satisfiedBy, falsifiedBy []int) {
	v := l.Var()
	if l.IsNegative() {
		return idx.negOf[v], idx.posOf[v]
	}
	return idx.posOf[v], idx.negOf[v]
}
