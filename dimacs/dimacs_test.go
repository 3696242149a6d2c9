package dimacs

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jwowen/ccsat/sat"
)

const testCNF = "c minimalist sat instance\n" +
	"p cnf 3 2\n" +
	"1 2 3 0\n" +
	"-1 -2 0\n"

func writeFile(t *testing.T, dir, name string, contents []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("writing %s: %s", path, err)
	}
	return path
}

func TestReadInstance(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "test.cnf", []byte(testCNF))

	got, err := ReadInstance(path, false)
	if err != nil {
		t.Fatalf("ReadInstance(): %s", err)
	}

	want := &Instance{
		Variables: 3,
		Clauses: sat.CNF{
			{sat.PosLit(1), sat.PosLit(2), sat.PosLit(3)},
			{sat.NegLit(1), sat.NegLit(2)},
		},
		Comments: []string{"minimalist sat instance"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadInstance() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadInstanceGzip(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(testCNF)); err != nil {
		t.Fatalf("compressing test instance: %s", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("closing gzip writer: %s", err)
	}
	path := writeFile(t, dir, "test.cnf.gz", buf.Bytes())

	got, err := ReadInstance(path, true)
	if err != nil {
		t.Fatalf("ReadInstance(): %s", err)
	}
	if got.Variables != 3 || len(got.Clauses) != 2 {
		t.Errorf("ReadInstance() = %+v, want 3 variables and 2 clauses", got)
	}
}

func TestReadInstanceMissingFile(t *testing.T) {
	_, err := ReadInstance(filepath.Join(t.TempDir(), "missing.cnf"), false)
	if err == nil {
		t.Fatalf("ReadInstance() on a missing file: want error, got none")
	}
}

func TestReadInstanceNotGzip(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "test.cnf", []byte(testCNF))

	_, err := ReadInstance(path, true)
	if err == nil {
		t.Fatalf("ReadInstance() on a plain-text file opened as gzip: want error, got none")
	}
}

func TestReadModels(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "test.cnf.models", []byte(
		"1 2 -3 0\n"+
			"-1 -2 3 0\n",
	))

	got, err := ReadModels(path)
	if err != nil {
		t.Fatalf("ReadModels(): %s", err)
	}

	want := []sat.Model{
		{1: true, 2: true, 3: false},
		{1: false, 2: false, 3: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadModels() mismatch (-want +got):\n%s", diff)
	}
}
