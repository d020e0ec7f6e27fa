package output

import (
	"bytes"
	"encoding/csv"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/daryltucker/rectcalc/internal/model"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	color.NoColor = true
	var buf bytes.Buffer
	prev := Logger
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(prev) })
	return &buf
}

func sample() model.Result {
	return model.Result{
		Length:    model.Valid(3),
		Width:     model.Valid(4),
		Perimeter: model.Valid(14),
		Area:      model.Valid(12),
	}
}

func TestEmitFileModeFormat(t *testing.T) {
	logs := captureLogs(t)
	dir := t.TempDir()
	e := NewEmitter(dir)
	if err := e.Emit(sample(), "r1.json"); err != nil {
		t.Fatalf("emit: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "r1.json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "{\n    \"length\": 3,\n    \"width\": 4,\n    \"perimeter\": 14,\n    \"area\": 12\n}"
	if string(b) != want {
		t.Fatalf("unexpected file:\n%s\nwant:\n%s", b, want)
	}
	if strings.Contains(logs.String(), "level=WARN") {
		t.Fatalf("no warning expected for a .json name: %s", logs.String())
	}
	entries, _ := os.ReadDir(dir)
	for _, en := range entries {
		if strings.HasPrefix(en.Name(), ".tmp-") {
			t.Fatalf("tmp file not cleaned: %s", en.Name())
		}
	}
}

func TestEmitAppendsJSONSuffix(t *testing.T) {
	logs := captureLogs(t)
	dir := t.TempDir()
	if err := NewEmitter(dir).Emit(sample(), "r2"); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "r2.json")); err != nil {
		t.Fatalf("expected r2.json: %v", err)
	}
	if !strings.Contains(logs.String(), "level=WARN") || !strings.Contains(logs.String(), "r2.json") {
		t.Fatalf("expected suffix warning, got %s", logs.String())
	}
}

func TestEmitSinkError(t *testing.T) {
	captureLogs(t)
	dir := filepath.Join(t.TempDir(), "gone")
	err := NewEmitter(dir).Emit(sample(), "r1.json")
	var se *model.SinkError
	if !errors.As(err, &se) {
		t.Fatalf("expected SinkError, got %v", err)
	}
}

func TestEmitConsoleMode(t *testing.T) {
	logs := captureLogs(t)
	res := model.Result{
		Length:    model.Valid(355),
		Width:     model.Valid(263),
		Perimeter: model.Valid(1236),
		Area:      model.Valid(93365),
	}
	if err := NewEmitter("").Emit(res, model.Nameless); err != nil {
		t.Fatalf("emit: %v", err)
	}
	out := logs.String()
	for _, want := range []string{
		"level=INFO",
		model.Nameless,
		"perimeter = 2 * (355 + 263) = 1236.0",
		"area = 355 * 263 = 93365.0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("console output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatBlockInvalid(t *testing.T) {
	color.NoColor = true
	res := model.Result{Length: model.Valid(-2), Width: model.Valid(3), Perimeter: model.Invalid, Area: model.Invalid}
	got := FormatBlock(res, "nameless")
	want := "nameless\n    length = -2\n    width = 3\n    perimeter = null\n    area = null"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestCSVWriter(t *testing.T) {
	p := filepath.Join(t.TempDir(), "summary.csv")
	w, err := NewCSVWriter(p)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := w.Write("r1", sample(), nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Write("bad", model.Result{}, errors.New("boom")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	f, err := os.Open(p)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if strings.Join(rows[1], ",") != "r1,3,4,14,12," {
		t.Fatalf("row 1 = %v", rows[1])
	}
	if strings.Join(rows[2], ",") != "bad,null,null,null,null,boom" {
		t.Fatalf("row 2 = %v", rows[2])
	}
}

func TestSetupWritesWarningsToFile(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { SetLogger(prev) })
	var console bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "logs", "rectcalc.log")
	closer := Setup(LogOptions{Console: &console, File: logFile})
	Logger.Info("just info")
	Logger.Warn("something odd", "source", "bad")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(b), "just info") || !strings.Contains(string(b), "something odd") {
		t.Fatalf("file sink should keep WARN+ only:\n%s", b)
	}
	if !strings.Contains(console.String(), "just info") || !strings.Contains(console.String(), "something odd") {
		t.Fatalf("console sink should keep INFO+:\n%s", console.String())
	}
}
