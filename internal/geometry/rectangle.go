/*
PURPOSE:
  Geometry engine. Computes perimeter and area from validated dimensions.

REQUIREMENTS:
  User-specified:
  - perimeter = 2 * (length + width), area = length * width.
  - Both are Invalid unless both dimensions are valid positive reals.
  - Derived quantities are read-only.

  Implementation-discovered:
  - Unexported fields and accessor methods make assignment a compile error.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Dim

ERROR HANDLING:
  - None. Invalid input propagates as model.Invalid.

IMPLEMENTATION RULES:
  - Recompute on every call; never cache.
  - Do not add setters.

USAGE:
  r := geometry.New(model.Valid(3), model.Valid(4))
  r.Perimeter() // 14

RELATED FILES:
  - internal/geometry/validate.go
*/

package geometry

import (
	"math"

	"github.com/daryltucker/rectcalc/internal/model"
)

// Rectangle holds two dimensions and exposes derived quantities.
type Rectangle struct {
	length model.Dim
	width  model.Dim
}

// New creates a Rectangle. Dimensions are stored as given.
func New(length, width model.Dim) Rectangle {
	return Rectangle{length: length, width: width}
}

func (r Rectangle) Length() model.Dim { return r.length }
func (r Rectangle) Width() model.Dim  { return r.width }

// Computable reports whether both dimensions are valid positive reals.
func (r Rectangle) Computable() bool {
	return r.length.Positive() && r.width.Positive()
}

// Perimeter returns 2 * (length + width), or Invalid. Results that
// overflow to infinity are Invalid.
func (r Rectangle) Perimeter() model.Dim {
	if !r.Computable() {
		return model.Invalid
	}
	return finite(model.Valid(2).Mul(r.length.Add(r.width)))
}

// Area returns length * width, or Invalid.
func (r Rectangle) Area() model.Dim {
	if !r.Computable() {
		return model.Invalid
	}
	return finite(r.length.Mul(r.width))
}

func finite(d model.Dim) model.Dim {
	v, ok := d.Value()
	if !ok || math.IsInf(v, 0) || math.IsNaN(v) {
		return model.Invalid
	}
	return d
}

// Result snapshots the rectangle into a result record.
func (r Rectangle) Result() model.Result {
	return model.Result{
		Length:    r.length,
		Width:     r.width,
		Perimeter: r.Perimeter(),
		Area:      r.Area(),
	}
}
