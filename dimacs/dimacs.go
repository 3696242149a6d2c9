// Package dimacs reads CNF instances and model files in the DIMACS
// convention (spec §6) and produces sat.CNF / sat.Model values. It is
// the external collaborator spec.md §1 calls out as out of the solver's
// scope: the solver only ever consumes a finished sat.CNF value.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	extdimacs "github.com/rhartert/dimacs"

	"github.com/jwowen/ccsat/sat"
)

// Instance is a parsed DIMACS CNF file: the declared variable and clause
// counts from the problem line, the clauses themselves (ready to hand to
// sat.Solver.Solve), and the text of any comment lines encountered
// (without the leading "c" marker).
type Instance struct {
	Variables int
	Clauses   sat.CNF
	Comments  []string
}

// ReadInstance parses the DIMACS CNF file at path. If gzipped is true,
// the file is first decompressed.
func ReadInstance(path string, gzipped bool) (*Instance, error) {
	r, err := openReader(path, gzipped)
	if err != nil {
		return nil, fmt.Errorf("dimacs: opening %q: %w", path, err)
	}
	defer r.Close()

	b := &instanceBuilder{instance: &Instance{}}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("dimacs: parsing %q: %w", path, err)
	}
	return b.instance, nil
}

func openReader(path string, gzipped bool) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !gzipped {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzipReadCloser{gz: gz, f: f}, nil
}

// gzipReadCloser closes both the gzip reader and the underlying file.
type gzipReadCloser struct {
	gz *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzipReadCloser) Close() error {
	gzErr := g.gz.Close()
	fErr := g.f.Close()
	if gzErr != nil {
		return gzErr
	}
	return fErr
}

// instanceBuilder adapts extdimacs.Builder to populate an Instance.
type instanceBuilder struct {
	instance *Instance
}

func (b *instanceBuilder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacs: unsupported problem type %q", problem)
	}
	b.instance.Variables = nVars
	b.instance.Clauses = make(sat.CNF, 0, nClauses)
	return nil
}

func (b *instanceBuilder) Clause(lits []int) error {
	clause := make(sat.Clause, len(lits))
	for i, v := range lits {
		if v < 0 {
			clause[i] = sat.NegLit(sat.Var(-v))
		} else {
			clause[i] = sat.PosLit(sat.Var(v))
		}
	}
	b.instance.Clauses = append(b.instance.Clauses, clause)
	return nil
}

func (b *instanceBuilder) Comment(c string) error {
	b.instance.Comments = append(b.instance.Comments, strings.TrimSpace(strings.TrimPrefix(c, "c")))
	return nil
}

// ReadModels parses a DIMACS-convention model file: one model per line,
// each a space-separated list of signed integers (negative = false)
// terminated by 0. The model line the CLI driver prints on a sat verdict
// has no terminating 0.
func ReadModels(path string) ([]sat.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dimacs: opening %q: %w", path, err)
	}
	defer f.Close()

	b := &modelBuilder{}
	if err := extdimacs.ReadBuilder(f, b); err != nil {
		return nil, fmt.Errorf("dimacs: parsing %q: %w", path, err)
	}
	return b.models, nil
}

type modelBuilder struct {
	models []sat.Model
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("dimacs: model files should not have a problem line")
}

func (b *modelBuilder) Comment(c string) error { return nil }

func (b *modelBuilder) Clause(lits []int) error {
	m := sat.Model{}
	for _, v := range lits {
		if v < 0 {
			m[sat.Var(-v)] = false
		} else {
			m[sat.Var(v)] = true
		}
	}
	b.models = append(b.models, m)
	return nil
}
