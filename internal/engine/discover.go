package engine

import (
	"os"

	"github.com/daryltucker/rectcalc/internal/input"
	"github.com/daryltucker/rectcalc/internal/output"
)

// Branch is the execution path chosen from the input configuration.
type Branch int

const (
	BranchInline Branch = iota
	BranchFile
	BranchDir
)

func (b Branch) String() string {
	switch b {
	case BranchFile:
		return "file"
	case BranchDir:
		return "directory"
	default:
		return "inline"
	}
}

// Plan lists the inputs a run will process.
type Plan struct {
	Branch Branch
	// Dir is the input directory for BranchDir; Sources are leaf names in it.
	Dir     string
	Sources []string
}

// Plan inspects the input path. Unresolvable inputs fall back to the
// inline branch with a warning.
func (c *Calculator) Plan() Plan {
	in := c.settings.Input
	if in == "" {
		return Plan{Branch: BranchInline}
	}

	st, err := os.Stat(in)
	if err != nil {
		output.Logger.Warn("Input path unresolved, using inline dimensions", "input", in, "error", err)
		return Plan{Branch: BranchInline}
	}

	if !st.IsDir() {
		if !input.IsJSON(in) {
			output.Logger.Warn("Input file is not JSON, using inline dimensions", "input", in)
			return Plan{Branch: BranchInline}
		}
		return Plan{Branch: BranchFile, Sources: []string{in}}
	}

	names, err := Discover(in)
	if err != nil {
		output.Logger.Error("Failed to list input directory", "input", in, "error", err)
		return Plan{Branch: BranchDir, Dir: in}
	}
	if len(names) == 0 {
		output.Logger.Warn("No JSON inputs found", "input", in)
	}
	return Plan{Branch: BranchDir, Dir: in, Sources: names}
}

// Discover returns the .json files directly inside dir, sorted by name.
// Inputs sharing a stem are reported; the later one overwrites the earlier.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	seen := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !input.IsJSON(e.Name()) {
			continue
		}
		stem := input.Stem(e.Name())
		if prev, ok := seen[stem]; ok {
			output.Logger.Warn("Inputs share a stem, later result overwrites earlier",
				"stem", stem, "first", prev, "second", e.Name())
		}
		seen[stem] = e.Name()
		names = append(names, e.Name())
	}
	return names, nil
}
