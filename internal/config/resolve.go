package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/daryltucker/rectcalc/internal/model"
)

var errLooksLikeFile = errors.New("output path has a file extension")

// FallbackDir is created under the working directory when the configured
// output cannot be used.
const FallbackDir = "result"

// Mode selects how results are emitted.
type Mode int

const (
	ModeConsole Mode = iota
	ModeFile
)

func (m Mode) String() string {
	if m == ModeFile {
		return "file"
	}
	return "console"
}

// Settings is a Config whose output location has been normalized.
// Workers receive it by value.
type Settings struct {
	Config
	Mode      Mode
	OutputDir string
}

// Resolve normalizes cfg once, before any work is dispatched. Relative
// output paths are taken against cwd. Every downgrade is reported as a
// *model.ConfigurationError in the returned slice; Resolve itself never fails.
func Resolve(cfg Config, cwd string) (Settings, []error) {
	s := Settings{Config: cfg}
	var warns []error

	if s.Cores < 1 {
		warns = append(warns, &model.ConfigurationError{
			Field: "cores", Value: strconv.Itoa(s.Cores),
			Fallback: strconv.Itoa(DefaultCores), Err: model.ErrBadCores,
		})
		s.Cores = DefaultCores
	}

	out := strings.TrimSpace(cfg.Output)
	if out == "" {
		s.Mode = ModeConsole
		return s, warns
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(cwd, out)
	}
	out = filepath.Clean(out)

	fallback := filepath.Join(cwd, FallbackDir)
	dir, warn := outputDir(out, fallback)
	if warn != nil {
		warns = append(warns, warn)
	}
	if dir != "" {
		err := os.MkdirAll(dir, 0o755)
		if err == nil {
			s.Mode, s.OutputDir = ModeFile, dir
			return s, warns
		}
		warns = append(warns, &model.ConfigurationError{
			Field: "output", Value: dir, Fallback: fallback, Err: err,
		})
	}

	if dir != fallback {
		err := os.MkdirAll(fallback, 0o755)
		if err == nil {
			s.Mode, s.OutputDir = ModeFile, fallback
			return s, warns
		}
		warns = append(warns, &model.ConfigurationError{
			Field: "output", Value: fallback, Fallback: "console", Err: err,
		})
	}
	s.Mode = ModeConsole
	return s, warns
}

// outputDir picks the directory to create for out, or "" when the parent is
// missing and the caller must fall back.
func outputDir(out, fallback string) (string, error) {
	if st, err := os.Stat(out); err == nil && st.IsDir() {
		return out, nil
	}
	parent := filepath.Dir(out)
	if st, err := os.Stat(parent); err != nil || !st.IsDir() {
		return "", &model.ConfigurationError{
			Field: "output", Value: out,
			Fallback: fallback, Err: fmt.Errorf("%w: %s", model.ErrParentMissing, parent),
		}
	}
	if ext := filepath.Ext(out); ext != "" {
		dir := filepath.Join(parent, strings.TrimSuffix(filepath.Base(out), ext))
		return dir, &model.ConfigurationError{
			Field: "output", Value: out, Fallback: dir,
			Err: errLooksLikeFile,
		}
	}
	return out, nil
}
