// Package render formats literals, clauses, CNFs, and models for human
// consumption and for the DIMACS convention used on the CLI's stdout.
// Like package dimacs, it is an external collaborator the solver itself
// never imports (spec §1).
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jwowen/ccsat/sat"
)

// Lit renders a literal as a signed decimal: "-3" for ¬3, "3" for 3.
func Lit(l sat.Lit) string {
	return l.String()
}

// Clause renders a clause as a parenthesized, comma-separated list of
// literals, e.g. "(1, -2, 3)". An empty clause renders as "()".
func Clause(c sat.Clause) string {
	if len(c) == 0 {
		return "()"
	}
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = Lit(l)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// CNF renders a CNF as a brace-delimited, comma-separated list of
// clauses, e.g. "{(1, 2), (-1)}". An empty CNF renders as "{}".
func CNF(f sat.CNF) string {
	if len(f) == 0 {
		return "{}"
	}
	parts := make([]string, len(f))
	for i, c := range f {
		parts[i] = Clause(c)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Model renders a model in ascending variable order as "v" for true and
// "-v" for false, space separated, e.g. "1 -2 3".
func Model(m sat.Model) string {
	vars := make([]sat.Var, 0, len(m))
	for v := range m {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })

	parts := make([]string, len(vars))
	for i, v := range vars {
		if m[v] {
			parts[i] = fmt.Sprintf("%d", v)
		} else {
			parts[i] = fmt.Sprintf("-%d", v)
		}
	}
	return strings.Join(parts, " ")
}
