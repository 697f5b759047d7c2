package cli

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/webzeppelin/rusty-sharutils/opt"
	"github.com/webzeppelin/rusty-sharutils/pkg"
)

// Option-state files are YAML mappings from long option name to value,
// with null marking a bare flag:
//
//	base64: null
//	output-file: out.bin
//
// Saving never records the save/load options themselves; a saved file
// replays cleanly without re-saving.

// stateOnlyNames are excluded from saved option state.
//
//nolint:gochecknoglobals
var stateOnlyNames = map[string]bool{
	"save-opts": true,
	"load-opts": true,
	"help":      true,
	"more-help": true,
	"version":   true,
}

// saveOpts writes the command's option state to path.
func saveOpts(path string, cmd *opt.Command) error {
	state := make(map[string]*string)

	for name := range cmd.Names() {
		if stateOnlyNames[name] {
			continue
		}

		if value, ok := cmd.Value(name); ok {
			state[name] = &value
		} else {
			state[name] = nil
		}
	}

	raw, err := yaml.Marshal(state)
	if err != nil {
		return pkg.ErrOptionsFile.Wrap(err)
	}

	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return pkg.ErrOptionsFile.Wrap(err)
	}

	return nil
}

// loadOpts reads saved option state from path and overlays the live
// command line on top of it: explicit command-line options always win.
// File entries pass through the same catalog lookup and validators as
// command-line options.
func loadOpts(
	catalog *opt.Catalog,
	cmd *opt.Command,
	path string,
) (*opt.Command, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pkg.ErrOptionsFile.Wrap(err)
	}

	var state map[string]*string
	if err := yaml.Unmarshal(raw, &state); err != nil {
		return nil, pkg.ErrOptionsFile.Wrap(err)
	}

	// Replay the file through the parsing engine so unknown names,
	// non-value options with values, and validator rejections are caught
	// identically to the command line.
	replay := []string{path}

	for name, value := range state {
		if value == nil {
			replay = append(replay, "--"+name)
		} else {
			replay = append(replay, "--"+name+"="+*value)
		}
	}

	base, err := catalog.Parse(replay)
	if err != nil {
		return nil, pkg.ErrOptionsFile.Wrapf("%s", path).Wrap(err)
	}

	return opt.Overlay(base, cmd), nil
}
