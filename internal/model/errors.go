package model

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField  = errors.New("missing field")
	ErrNotNumeric    = errors.New("dimension is not a number")
	ErrNotPositive   = errors.New("dimension is not a positive number")
	ErrNotFinite     = errors.New("derived quantity is not finite")
	ErrParentMissing = errors.New("parent directory does not exist")
	ErrBadCores      = errors.New("worker count must be positive")
)

// ConfigurationError is a misconfiguration that was downgraded to a default.
type ConfigurationError struct {
	Field    string
	Value    string
	Fallback string
	Err      error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("config %s=%q", e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Fallback != "" {
		msg += "; using " + e.Fallback
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// InvalidInputError marks a dimension that is non-numeric, non-positive or missing.
type InvalidInputError struct {
	Source string
	Field  string
	Err    error
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input in %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("invalid %s in %s: %v", e.Field, e.Source, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// SourceError means an input file could not be read or parsed.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("read source %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// SinkError means a result could not be written.
type SinkError struct {
	Path string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("write result %s: %v", e.Path, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }
