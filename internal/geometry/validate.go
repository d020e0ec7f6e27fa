package geometry

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/daryltucker/rectcalc/internal/model"
)

// decimal matches an integer part with an optional fractional part.
var decimal = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Validate converts each value to a Dim. Numbers pass through unchanged,
// text is accepted only in plain decimal form, everything else is Invalid.
// Positivity is not checked here. The result always has len(values) entries.
func Validate(values ...any) []model.Dim {
	out := make([]model.Dim, len(values))
	for i, v := range values {
		out[i] = finite(validateOne(v))
	}
	return out
}

func validateOne(v any) model.Dim {
	switch x := v.(type) {
	case model.Dim:
		return x
	case float64:
		return model.Valid(x)
	case float32:
		return model.Valid(float64(x))
	case int:
		return model.Valid(float64(x))
	case int32:
		return model.Valid(float64(x))
	case int64:
		return model.Valid(float64(x))
	case uint:
		return model.Valid(float64(x))
	case uint32:
		return model.Valid(float64(x))
	case uint64:
		return model.Valid(float64(x))
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return model.Invalid
		}
		return model.Valid(f)
	case string:
		return parseDecimal(x)
	default:
		return model.Invalid
	}
}

func parseDecimal(s string) model.Dim {
	s = strings.TrimSpace(s)
	if !decimal.MatchString(s) {
		return model.Invalid
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return model.Invalid
	}
	return model.Valid(f)
}
