package cli

import (
	"errors"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/webzeppelin/rusty-sharutils/opt"
)

// suggest returns a "did you mean" hint for an unknown long option, or ""
// when the failure is of another kind or no catalog name comes close.
func suggest(catalog *opt.Catalog, err error) string {
	var perr *opt.Error
	if !errors.As(err, &perr) || perr.Category != opt.UnknownOption {
		return ""
	}

	trigger := perr.Detail
	if !strings.HasPrefix(trigger, "--") {
		return ""
	}

	names := make([]string, 0, catalog.Len())
	for def := range catalog.Definitions() {
		names = append(names, def.Name)
	}

	matches := fuzzy.Find(strings.TrimLeft(trigger, "-"), names)
	if len(matches) == 0 {
		return ""
	}

	return "Did you mean --" + matches[0].Str + "?"
}
