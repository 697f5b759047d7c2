package opt

import (
	"fmt"
	"strings"
)

// helpColumn is the column at which option descriptions are aligned.
const helpColumn = 28

// Help renders a usage text block for the catalog. The output is one usage
// line, a blank line, the one-line description, a blank line, an "Options:"
// header, and one line per definition in catalog order with the short and
// long trigger left-padded to a fixed column followed by the help text.
//
// Rendering has no parsing side effects; the function is pure.
func (c *Catalog) Help(name, description, usage string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Usage: %s %s\n\n", name, usage)
	sb.WriteString(description)
	sb.WriteString("\n\nOptions:\n")

	for def := range c.Definitions() {
		trigger := fmt.Sprintf("  -%c, --%s", def.Flag, def.Name)
		sb.WriteString(trigger)

		pad := helpColumn - len(trigger)
		if pad < 1 {
			pad = 1
		}

		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(def.Help)
		sb.WriteByte('\n')
	}

	return sb.String()
}
