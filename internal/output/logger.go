/*
PURPOSE:
  Provides the process-wide structured logger for the calculator.
  Wraps slog with two sinks: console and a rotating log file.

REQUIREMENTS:
  User-specified:
  - Console sink shows INFO and above.
  - File sink keeps WARN and above, rotated at 1 MiB, kept for 10 days.

  Implementation-discovered:
  - Console-mode results are multi-line blocks; the console handler must
    print messages unquoted (tint), while the file stays logfmt.
  - Workers share the logger; each record is written in one call.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

ERROR HANDLING:
  - Setup returns a closer for the file sink; the caller owns it.

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).
  - Fan out with slog-multi, rotate with lumberjack.

USAGE:
  closer := output.Setup(output.LogOptions{File: "logs/rectcalc.log"})
  defer closer.Close()
  output.Logger.Info("message", "key", "value")

RELATED FILES:
  - internal/cli/run.go
*/

package output

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}

// LogOptions configures the two logging sinks.
type LogOptions struct {
	// Console defaults to os.Stdout.
	Console io.Writer
	// File is the rotating log file path; empty disables the file sink.
	File       string
	MaxSizeMB  int
	MaxAgeDays int
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup installs a logger writing INFO+ to the console and WARN+ to a
// rotating file, and returns the file sink's closer.
func Setup(opts LogOptions) io.Closer {
	console := opts.Console
	noColor := true
	if console == nil {
		console = os.Stdout
		noColor = !isatty.IsTerminal(os.Stdout.Fd())
	}
	consoleHandler := tint.NewHandler(console, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	})

	if opts.File == "" {
		SetLogger(slog.New(consoleHandler))
		return nopCloser{}
	}

	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 1
	}
	if opts.MaxAgeDays <= 0 {
		opts.MaxAgeDays = 10
	}
	file := &lumberjack.Logger{
		Filename: opts.File,
		MaxSize:  opts.MaxSizeMB,
		MaxAge:   opts.MaxAgeDays,
	}
	fileHandler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelWarn})

	SetLogger(slog.New(slogmulti.Fanout(consoleHandler, fileHandler)))
	return file
}
