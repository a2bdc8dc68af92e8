package csvio

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

type stubSummer map[string]string

func (s stubSummer) Sum(path string) (string, error) {
	if md5, ok := s[filepath.Base(path)]; ok {
		return md5, nil
	}
	return "", errors.New("no such file")
}

func TestUpgradeMovesChecksumOutOfOptions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "old.csv")
	out := filepath.Join(dir, "new.csv")

	rows := [][]string{
		SchemaOld.Header,
		{"Section", "Catalog A", "", "http://x/a", "2020-01-01", "", ""},
		{"Doc", "Doc1", "a.pdf", "http://x/a.pdf", "2020-02-02", "", "containing-page='X' md5='feedface'"},
		{"Doc", "Doc2", "b.pdf", "http://x/b.pdf", "2020-02-03", "", "containing-page='X'"},
	}
	if err := Write(in, rows); err != nil {
		t.Fatalf("write input: %v", err)
	}

	computed, err := Upgrade{Summer: stubSummer{"b.pdf": "cafebabe"}}.Run(context.Background(), in, out)
	if err != nil {
		t.Fatalf("Upgrade error: %v", err)
	}
	if computed != 1 {
		t.Fatalf("expected 1 computed checksum, got %d", computed)
	}

	got, err := Read(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !headerEqual(got[0], SchemaCurrent.Header) {
		t.Fatalf("unexpected output header: %v", got[0])
	}

	section := got[1]
	if section[6] != "" {
		t.Fatalf("heading rows carry no checksum: %v", section)
	}

	doc1 := got[2]
	if doc1[6] != "feedface" {
		t.Fatalf("checksum not extracted from options: %v", doc1)
	}
	if doc1[7] != "containing-page='X'" {
		t.Fatalf("md5 token must be removed from options: %q", doc1[7])
	}

	doc2 := got[3]
	if doc2[6] != "cafebabe" {
		t.Fatalf("checksum not computed: %v", doc2)
	}
}

func TestUpgradeRejectsBadHeader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "old.csv")
	if err := Write(in, [][]string{{"Wrong", "Header"}}); err != nil {
		t.Fatalf("write input: %v", err)
	}

	_, err := Upgrade{}.Run(context.Background(), in, filepath.Join(dir, "new.csv"))
	var structural *StructuralError
	if !errors.As(err, &structural) {
		t.Fatalf("expected StructuralError, got %v", err)
	}
}

func TestUpgradeRejectsWrongColumnCount(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "old.csv")
	rows := [][]string{
		SchemaOld.Header,
		{"Doc", "Doc1", "a.pdf", "http://x/a.pdf", "2020-02-02", ""},
	}
	if err := Write(in, rows); err != nil {
		t.Fatalf("write input: %v", err)
	}

	_, err := Upgrade{}.Run(context.Background(), in, filepath.Join(dir, "new.csv"))
	var structural *StructuralError
	if !errors.As(err, &structural) {
		t.Fatalf("expected StructuralError, got %v", err)
	}
	if structural.Line != 2 {
		t.Fatalf("expected failure on line 2, got %d", structural.Line)
	}
}

func TestUpgradeSkipsBlankRows(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "old.csv")
	rows := [][]string{
		SchemaOld.Header,
		{"", "", "", "", "", "", ""},
		{"Section", "S", "", "http://x/s", "2020-01-01", "", ""},
	}
	if err := Write(in, rows); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out := filepath.Join(dir, "new.csv")
	if _, err := (Upgrade{}).Run(context.Background(), in, out); err != nil {
		t.Fatalf("Upgrade error: %v", err)
	}

	got, err := Read(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("blank row must be dropped, got %d rows", len(got))
	}
}
