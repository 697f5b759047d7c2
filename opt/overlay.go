package opt

// Overlay combines two parse results from the same catalog: options from
// over shadow options from base, and base contributes only options over
// never mentions. The executable path and positional arguments are taken
// from over. Neither input is modified.
//
// This supports option-state files: the file's parsed state becomes the
// base, and the live command line wins any conflict.
func Overlay(base, over *Command) *Command {
	merged := &Command{
		Path: over.Path,
		Args: append([]string{}, over.Args...),
		set:  make(map[string]setting, len(base.set)+len(over.set)),
	}

	for _, name := range base.order {
		merged.set[name] = base.set[name]
		merged.order = append(merged.order, name)
	}

	for _, name := range over.order {
		if _, ok := merged.set[name]; !ok {
			merged.order = append(merged.order, name)
		}

		merged.set[name] = over.set[name]
	}

	return merged
}
