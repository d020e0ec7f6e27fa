/*
PURPOSE:
  High-level runner that orchestrates a calculator run.
  Routes to one of three branches (single file, directory, inline) and runs
  load -> validate -> compute -> emit for each input.

REQUIREMENTS:
  User-specified:
  - A directory of JSON inputs is processed over a pool of `cores` workers.
  - Per-input failures are logged and skipped; the batch continues.
  - When both inline dimensions and a file are given, the file wins (WARN).

  Implementation-discovered:
  - Work is I/O bound with no shared mutable state, so a goroutine pool
    replaces worker processes. Each worker gets its own copy of Settings.
  - Counters are shared and updated atomically.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/input, internal/geometry, internal/output

ERROR HANDLING:
  - Logs errors but continues (resilience).
  - SourceError and SinkError log at ERROR; invalid dimensions at WARN.

IMPLEMENTATION RULES:
  - Within one input the steps are strictly sequential.
  - No ordering across inputs.

USAGE:
  calc := engine.New(settings)
  summary, err := calc.Run(ctx)

RELATED FILES:
  - internal/engine/discover.go
  - internal/config/resolve.go
*/

package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/daryltucker/rectcalc/internal/config"
	"github.com/daryltucker/rectcalc/internal/geometry"
	"github.com/daryltucker/rectcalc/internal/input"
	"github.com/daryltucker/rectcalc/internal/model"
	"github.com/daryltucker/rectcalc/internal/output"
)

// Summary counts what a run did.
type Summary struct {
	Processed int
	Failed    int
	Written   int
}

type counters struct {
	processed atomic.Int64
	failed    atomic.Int64
	written   atomic.Int64
}

func (c *counters) snapshot() Summary {
	return Summary{
		Processed: int(c.processed.Load()),
		Failed:    int(c.failed.Load()),
		Written:   int(c.written.Load()),
	}
}

// Calculator runs the rectangle workflow for resolved settings.
type Calculator struct {
	settings config.Settings
	emitter  *output.Emitter
}

// New creates a Calculator. Settings must already be resolved.
func New(s config.Settings) *Calculator {
	if s.Cores < 1 {
		s.Cores = config.DefaultCores
	}
	return &Calculator{
		settings: s,
		emitter:  output.NewEmitter(s.OutputDir),
	}
}

// Settings returns a copy of the calculator's settings.
func (c *Calculator) Settings() config.Settings {
	return c.settings
}

// Run executes the branch selected by the input configuration.
func (c *Calculator) Run(ctx context.Context) (Summary, error) {
	var stats counters

	var summary *output.CSVWriter
	if c.settings.Summary != "" {
		w, err := output.NewCSVWriter(c.settings.Summary)
		if err != nil {
			output.Logger.Error("Failed to init CSV summary", "path", c.settings.Summary, "error", err)
		} else {
			summary = w
			defer summary.Close()
		}
	}

	plan := c.Plan()
	output.Logger.Info("Starting run",
		"branch", plan.Branch,
		"inputs", len(plan.Sources),
		"mode", c.settings.Mode,
		"cores", c.settings.Cores,
	)

	var err error
	switch plan.Branch {
	case BranchFile:
		c.newWorker(summary, &stats).process(plan.Sources[0], "")
	case BranchDir:
		err = c.runPool(ctx, plan, summary, &stats)
	default:
		c.newWorker(summary, &stats).process("", "")
	}

	s := stats.snapshot()
	output.Logger.Info("Run complete", "processed", s.Processed, "failed", s.Failed, "written", s.Written)
	return s, err
}

func (c *Calculator) runPool(ctx context.Context, plan Plan, summary *output.CSVWriter, stats *counters) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.settings.Cores)

	dispatched := 0
	for _, name := range plan.Sources {
		if gctx.Err() != nil {
			break
		}
		w := c.newWorker(summary, stats)
		g.Go(func() error {
			w.process(name, plan.Dir)
			return nil
		})
		dispatched++
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		output.Logger.Warn("Run interrupted", "dispatched", dispatched, "skipped", len(plan.Sources)-dispatched)
		return err
	}
	return nil
}

// worker carries its own copy of the settings.
type worker struct {
	cfg     config.Settings
	emitter *output.Emitter
	summary *output.CSVWriter
	stats   *counters
}

func (c *Calculator) newWorker(summary *output.CSVWriter, stats *counters) worker {
	return worker{cfg: c.settings, emitter: c.emitter, summary: summary, stats: stats}
}

// process runs load -> validate -> compute -> emit for one input. An empty
// ref selects the inline dimensions.
func (w worker) process(ref, dir string) {
	w.stats.processed.Add(1)
	defer func() {
		if r := recover(); r != nil {
			output.Logger.Error("Unexpected failure processing input", "ref", ref, "error", fmt.Sprint(r))
			w.stats.failed.Add(1)
		}
	}()

	name := model.Nameless
	var length, width model.Dim
	var path string

	if ref != "" {
		path = input.Resolve(ref, dir)
		name = input.Stem(path)
		if w.cfg.HasInline() {
			output.Logger.Warn("Inline dimensions ignored, file values take precedence",
				"source", name, "file", path,
				"length", w.cfg.Length, "width", w.cfg.Width)
		}

		var err error
		length, width, err = input.Load(ref, dir)
		var srcErr *model.SourceError
		var invErr *model.InvalidInputError
		switch {
		case errors.As(err, &srcErr):
			output.Logger.Error("Failed to load input", "source", name, "file", path, "error", err)
			w.stats.failed.Add(1)
			w.record(name, model.Result{}, err)
			return
		case errors.As(err, &invErr):
			output.Logger.Warn("Input is missing fields", "source", name, "file", path, "error", err)
		}
	} else {
		dims := geometry.Validate(w.cfg.Length, w.cfg.Width)
		length, width = dims[0], dims[1]
	}

	rect := geometry.New(length, width)
	res := rect.Result()
	var invalid error
	switch {
	case !rect.Computable():
		invalid = dimensionError(name, rect)
	case !res.Perimeter.IsValid() || !res.Area.IsValid():
		invalid = &model.InvalidInputError{Source: name, Err: model.ErrNotFinite}
	}
	if invalid != nil {
		attrs := []any{"source", name}
		if path != "" {
			attrs = append(attrs, "file", path)
		}
		attrs = append(attrs, "length", length, "width", width, "error", invalid)
		output.Logger.Warn("Invalid dimensions, derived quantities unavailable", attrs...)
	}

	target := name
	if !w.emitter.Console() {
		target = name + ".json"
	}
	if err := w.emitter.Emit(res, target); err != nil {
		output.Logger.Error("Failed to write result", "source", name, "error", err)
		w.stats.failed.Add(1)
		w.record(name, res, err)
		return
	}
	if !w.emitter.Console() {
		w.stats.written.Add(1)
		output.Logger.Info("Result written", "source", name, "file", filepath.Join(w.emitter.Dir, target))
	}
	w.record(name, res, invalid)
}

func (w worker) record(name string, res model.Result, cause error) {
	if w.summary == nil {
		return
	}
	if err := w.summary.Write(name, res, cause); err != nil {
		output.Logger.Error("Failed to write summary row", "source", name, "error", err)
	}
}

func dimensionError(source string, r geometry.Rectangle) error {
	var errs []error
	for _, f := range []struct {
		name string
		dim  model.Dim
	}{{"length", r.Length()}, {"width", r.Width()}} {
		switch {
		case !f.dim.IsValid():
			errs = append(errs, &model.InvalidInputError{Source: source, Field: f.name, Err: model.ErrNotNumeric})
		case !f.dim.Positive():
			errs = append(errs, &model.InvalidInputError{Source: source, Field: f.name, Err: model.ErrNotPositive})
		}
	}
	return errors.Join(errs...)
}
