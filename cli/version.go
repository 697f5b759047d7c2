package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/webzeppelin/rusty-sharutils/pkg"
)

const copyrightNotice = `Copyright (C) 2025 rusty-sharutils contributors
This is free software; see the source for copying conditions.
There is NO warranty; not even for MERCHANTABILITY or FITNESS FOR A
PARTICULAR PURPOSE.`

const licenseNotice = `This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.`

// printVersion writes the version banner selected by mode. Modes are
// matched by their first letter: v prints the version line alone, c adds
// the copyright block, and anything else the validator admitted prints
// the full license notice.
func printVersion(w io.Writer, toolName, mode string) {
	version := strings.TrimSpace(pkg.Version)

	first := 'c'
	if mode != "" {
		first = unicode.ToLower([]rune(mode)[0])
	}

	switch first {
	case 'v':
		fmt.Fprintf(w, "%s %s\n", toolName, version)
	case 'c':
		fmt.Fprintf(w, "%s %s (%s)\n", toolName, version, pkg.Name)
		fmt.Fprintln(w, copyrightNotice)
	default:
		fmt.Fprintf(w, "%s %s (%s)\n", toolName, version, pkg.Name)
		fmt.Fprintln(w, copyrightNotice)
		fmt.Fprintln(w)
		fmt.Fprintln(w, licenseNotice)
	}
}
