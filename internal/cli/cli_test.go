package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daryltucker/rectcalc/internal/config"
	"github.com/daryltucker/rectcalc/internal/output"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile, inputOverride, outputOverride = "", "", ""
	lengthOverride, widthOverride, logFileOverride, summaryOverride = "", "", "", ""
	coresOverride = config.DefaultCores
	listInput, forceInit = "", false

	prev := output.Logger
	t.Cleanup(func() { output.SetLogger(prev) })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRunDirectory(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	logFile := filepath.Join(t.TempDir(), "rectcalc.log")
	for _, n := range []string{"r1", "r2", "r3"} {
		if err := os.WriteFile(filepath.Join(in, n+".json"), []byte(`{"length": 2, "width": 3}`), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if _, err := execute(t, "run", "-i", in, "-o", out, "-c", "2", "--log-file", logFile); err != nil {
		t.Fatalf("run: %v", err)
	}
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatalf("read out: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 results, got %d", len(entries))
	}
	b, err := os.ReadFile(filepath.Join(out, "r2.json"))
	if err != nil {
		t.Fatalf("read r2: %v", err)
	}
	if !strings.Contains(string(b), `"area": 6`) {
		t.Fatalf("unexpected result: %s", b)
	}
}

func TestRunBadConfigDoesNotFail(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(p, []byte("cores: [1"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := execute(t, "run", "--config", p); err != nil {
		t.Fatalf("run must exit cleanly, got %v", err)
	}
}

func TestList(t *testing.T) {
	in := t.TempDir()
	for _, n := range []string{"b.json", "a.json", "c.txt"} {
		if err := os.WriteFile(filepath.Join(in, n), []byte(`{}`), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	out, err := execute(t, "list", "-i", in)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Branch: directory") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	a := strings.Index(out, filepath.Join(in, "a.json"))
	b := strings.Index(out, filepath.Join(in, "b.json"))
	if a < 0 || b < 0 || a > b || strings.Contains(out, "c.txt") {
		t.Fatalf("unexpected listing:\n%s", out)
	}
}

func TestConfigInit(t *testing.T) {
	p := filepath.Join(t.TempDir(), "rectcalc.yaml")
	if _, err := execute(t, "config", "init", p); err != nil {
		t.Fatalf("init: %v", err)
	}
	cfg, err := config.Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Cores != config.DefaultCores {
		t.Fatalf("cores = %d", cfg.Cores)
	}
	if _, err := execute(t, "config", "init", p); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if _, err := execute(t, "config", "init", "--force", p); err != nil {
		t.Fatalf("force init: %v", err)
	}
}
