/*
PURPOSE:
  Writes one result record per file as indented JSON.

REQUIREMENTS:
  User-specified:
  - Fields length, width, perimeter, area in that order.
  - 4-space indent; Invalid renders as null.

  Implementation-discovered:
  - Workers may target the same directory; writes go through a temp file
    in that directory and a rename, so readers never see partial files.

ARCHITECTURE INTEGRATION:
  - Called by: output.Emitter
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Returns error on temp file creation, write, or rename failure.
  - Temp files are removed on failure.

USAGE:
  err := output.WriteJSON("/out/r1.json", res)

RELATED FILES:
  - internal/model/types.go
*/

package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/daryltucker/rectcalc/internal/model"
)

// Indent is the JSON indent used for result files.
const Indent = "    "

// EncodeResult renders res as indented JSON.
func EncodeResult(res model.Result) ([]byte, error) {
	return json.MarshalIndent(res, "", Indent)
}

// WriteJSON writes res to path, replacing any existing file.
// An existing file with the same name is overwritten: the last writer wins.
func WriteJSON(path string, res model.Result) error {
	data, err := EncodeResult(res)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}
