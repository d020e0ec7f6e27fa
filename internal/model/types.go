/*
PURPOSE:
  Defines the core data structures used throughout the rectangle calculator.
  These models represent dimensions, requests, and computed results.

REQUIREMENTS:
  User-specified:
  - A dimension is either a valid real or the invalid sentinel.
  - Results carry length, width, perimeter and area, in that order.

  Implementation-discovered:
  - Invalid must serialize as JSON null and decode back from null.
  - Arithmetic over Dim must propagate Invalid.

ARCHITECTURE INTEGRATION:
  - Used by: internal/geometry, internal/input, internal/output, internal/engine
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs). See errors.go for the error taxonomy.

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Dim is a value type; never hand out pointers to it.

USAGE:
  res := model.Result{Length: model.Valid(3), Width: model.Valid(4)}

SELF-HEALING INSTRUCTIONS:
  - If new derived quantities are needed, add a field and update the writers.

RELATED FILES:
  - internal/output/json.go
  - internal/output/csv.go

MAINTENANCE:
  - Update when adding new quantities to capture.
*/

package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Nameless is the source name used for inline (file-less) runs.
const Nameless = "nameless"

// Dim is a dimension or derived quantity: Valid(x) or Invalid.
type Dim struct {
	v  float64
	ok bool
}

// Invalid is the sentinel for values that could not be parsed or computed.
var Invalid = Dim{}

// Valid wraps a real number.
func Valid(x float64) Dim {
	return Dim{v: x, ok: true}
}

// Value returns the wrapped number and whether it is valid.
func (d Dim) Value() (float64, bool) {
	return d.v, d.ok
}

// IsValid reports whether d holds a number.
func (d Dim) IsValid() bool {
	return d.ok
}

// Positive reports whether d is valid and strictly greater than zero.
func (d Dim) Positive() bool {
	return d.ok && d.v > 0
}

// Add returns d+o, or Invalid if either operand is Invalid.
func (d Dim) Add(o Dim) Dim {
	if !d.ok || !o.ok {
		return Invalid
	}
	return Valid(d.v + o.v)
}

// Mul returns d*o, or Invalid if either operand is Invalid.
func (d Dim) Mul(o Dim) Dim {
	if !d.ok || !o.ok {
		return Invalid
	}
	return Valid(d.v * o.v)
}

// String renders the shortest representation of the number, or "null".
func (d Dim) String() string {
	if !d.ok {
		return "null"
	}
	return strconv.FormatFloat(d.v, 'g', -1, 64)
}

// Decimal renders the number like String but always keeps a fractional
// part for integral values (14 -> "14.0").
func (d Dim) Decimal() string {
	if !d.ok {
		return "null"
	}
	s := strconv.FormatFloat(d.v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (d Dim) MarshalJSON() ([]byte, error) {
	if !d.ok {
		return []byte("null"), nil
	}
	return json.Marshal(d.v)
}

func (d *Dim) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = Invalid
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*d = Valid(f)
	return nil
}

// Request is one unit of work handed to the geometry engine.
type Request struct {
	Source string
	Length Dim
	Width  Dim
}

// Result represents the outcome of a single rectangle computation.
type Result struct {
	Length    Dim `json:"length"`
	Width     Dim `json:"width"`
	Perimeter Dim `json:"perimeter"`
	Area      Dim `json:"area"`
}
