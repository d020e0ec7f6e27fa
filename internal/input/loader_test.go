package input

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/daryltucker/rectcalc/internal/model"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoadValid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "r1.json", `{"length": 3, "width": 4}`)
	l, w, err := Load("r1.json", dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if l != model.Valid(3) || w != model.Valid(4) {
		t.Fatalf("got %v %v", l, w)
	}
}

// Order, not names, decides which member is the length.
func TestLoadUsesMemberOrder(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "swapped.json", `{"width": 7, "length": 2}`)
	l, w, err := Load(p, "/ignored")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if l != model.Valid(7) || w != model.Valid(2) {
		t.Fatalf("got %v %v", l, w)
	}
}

func TestLoadNonNumericField(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", `{"length": "abc", "width": 4}`)
	l, w, err := Load("bad.json", dir)
	if err != nil {
		t.Fatalf("non-numeric fields must not be a source error: %v", err)
	}
	if l.IsValid() || w != model.Valid(4) {
		t.Fatalf("got %v %v", l, w)
	}
}

func TestLoadMissingWidth(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "half.json", `{"length": 5}`)
	l, w, err := Load("half.json", dir)
	var inv *model.InvalidInputError
	if !errors.As(err, &inv) || inv.Field != "width" {
		t.Fatalf("expected missing width error, got %v", err)
	}
	if l != model.Valid(5) || w.IsValid() {
		t.Fatalf("got %v %v", l, w)
	}
}

func TestLoadSourceErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"length": 3,`)
	writeFile(t, dir, "array.json", `[3, 4]`)
	writeFile(t, dir, "trailing.json", `{"length": 3, "width": 4} x`)
	for _, name := range []string{"broken.json", "array.json", "trailing.json", "absent.json"} {
		l, w, err := Load(name, dir)
		var se *model.SourceError
		if !errors.As(err, &se) {
			t.Fatalf("%s: expected SourceError, got %v", name, err)
		}
		if se.Path != filepath.Join(dir, name) {
			t.Fatalf("%s: error path %q", name, se.Path)
		}
		if l.IsValid() || w.IsValid() {
			t.Fatalf("%s: dims should be invalid", name)
		}
	}
}

func TestStemAndIsJSON(t *testing.T) {
	if got := Stem("/a/b/r1.json"); got != "r1" {
		t.Fatalf("Stem = %q", got)
	}
	if !IsJSON("x.JSON") || IsJSON("x.txt") {
		t.Fatalf("IsJSON misreports")
	}
}
