package opt

// Standard returns the option definitions shared by every tool in the
// suite. Tools splice these with their own definitions; a tool definition
// with the same long name replaces the standard one, preserving its
// position in catalog order.
func Standard() []Definition {
	return []Definition{
		{
			Flag: 'h',
			Name: "help",
			Help: "Display usage information and exit",
		},
		{
			Flag:       'v',
			Name:       "version",
			TakesValue: true,
			Default:    "copyright",
			HasDefault: true,
			Validator:  ValidateVersionMode,
			Help:       "Output version information and exit [=MODE]",
		},
		{
			Flag: '!',
			Name: "more-help",
			Help: "Extended usage information passed through pager",
		},
		{
			Flag:       'R',
			Name:       "save-opts",
			TakesValue: true,
			Validator:  ValidateFilePath,
			Help:       "Save the option state to a config file [=FILE]",
		},
		{
			Flag:       'r',
			Name:       "load-opts",
			TakesValue: true,
			Validator:  ValidateFilePath,
			Help:       "Load options from the config file FILE",
		},
	}
}

// Merge combines the standard options with tool-specific definitions.
// A tool definition whose long name matches a standard one replaces it in
// place; remaining tool definitions are appended in their given order.
func Merge(standard, tool []Definition) []Definition {
	merged := make([]Definition, len(standard), len(standard)+len(tool))
	copy(merged, standard)

	for _, def := range tool {
		replaced := false

		for i := range merged {
			if merged[i].Name == def.Name {
				merged[i] = def
				replaced = true

				break
			}
		}

		if !replaced {
			merged = append(merged, def)
		}
	}

	return merged
}
