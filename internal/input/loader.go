/*
PURPOSE:
  Loads a rectangle request from a JSON file.

REQUIREMENTS:
  User-specified:
  - The file is a JSON object; the first member is the length, the second the width.
  - Member names are not inspected; document order gives meaning.

  Implementation-discovered:
  - encoding/json maps lose order, so the object is walked with the token API.
  - Numbers are kept as json.Number so the validator sees the literal.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Uses: internal/geometry.Validate

ERROR HANDLING:
  - Missing file, unreadable file, malformed JSON: *model.SourceError.
  - Fewer than two members: Invalid dims plus *model.InvalidInputError.

USAGE:
  l, w, err := input.Load("r1.json", "/data/in")

RELATED FILES:
  - internal/engine/runner.go
*/

package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/daryltucker/rectcalc/internal/geometry"
	"github.com/daryltucker/rectcalc/internal/model"
)

var errNotObject = errors.New("top-level value is not an object")

// Resolve joins a leaf name onto inputDir. Absolute references are kept.
func Resolve(ref, inputDir string) string {
	if filepath.IsAbs(ref) || inputDir == "" {
		return ref
	}
	return filepath.Join(inputDir, ref)
}

// Stem returns the file name without directory and extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsJSON reports whether path carries a .json suffix (any case).
func IsJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// Load reads length and width from the file named by ref.
func Load(ref, inputDir string) (length, width model.Dim, err error) {
	path := Resolve(ref, inputDir)
	f, err := os.Open(path)
	if err != nil {
		return model.Invalid, model.Invalid, &model.SourceError{Path: path, Err: err}
	}
	defer f.Close()

	values, err := decodeOrdered(f)
	if err != nil {
		return model.Invalid, model.Invalid, &model.SourceError{Path: path, Err: err}
	}

	switch len(values) {
	case 0:
		err = &model.InvalidInputError{Source: path, Err: model.ErrMissingField}
	case 1:
		err = &model.InvalidInputError{Source: path, Field: "width", Err: model.ErrMissingField}
	}
	for len(values) < 2 {
		values = append(values, nil)
	}
	dims := geometry.Validate(values[0], values[1])
	return dims[0], dims[1], err
}

// decodeOrdered returns the member values of a JSON object in document order.
func decodeOrdered(r io.Reader) ([]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}

	var values []any
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("decode key: %w", err)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode value: %w", err)
		}
		values = append(values, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after object")
	}
	return values, nil
}
