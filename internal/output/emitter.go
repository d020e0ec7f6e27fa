package output

import (
	"path/filepath"
	"strings"

	"github.com/daryltucker/rectcalc/internal/model"
)

// Emitter sends results either to the log (console mode) or to one JSON
// file per result under Dir (file mode).
type Emitter struct {
	Dir string
}

// NewEmitter returns a file-mode emitter for dir, or a console-mode emitter
// when dir is empty.
func NewEmitter(dir string) *Emitter {
	return &Emitter{Dir: dir}
}

// Console reports whether results go to the log.
func (e *Emitter) Console() bool {
	return e.Dir == ""
}

// JSONName appends ".json" when name lacks it and reports whether it did.
func JSONName(name string) (string, bool) {
	if strings.HasSuffix(name, ".json") {
		return name, false
	}
	return name + ".json", true
}

// Emit writes res. In console mode name is the source name; in file mode it
// is the output file name. Write failures come back as *model.SinkError.
func (e *Emitter) Emit(res model.Result, name string) error {
	if e.Console() {
		Logger.Info(FormatBlock(res, name))
		return nil
	}

	fixed, appended := JSONName(filepath.Base(name))
	if appended {
		Logger.Warn("Output name lacks .json suffix, appending", "name", name, "file", fixed)
	}
	path := filepath.Join(e.Dir, fixed)
	if err := WriteJSON(path, res); err != nil {
		return &model.SinkError{Path: path, Err: err}
	}
	return nil
}
