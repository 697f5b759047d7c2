package opt

import (
	"fmt"
	"iter"
)

// Validator checks a candidate raw value for one option. It must be pure:
// no token consumption, no parser-state mutation. A non-nil return rejects
// the value and aborts the parse with a ValidationError carrying the
// returned message verbatim.
type Validator func(value string) error

// Definition describes one recognizable option.
type Definition struct {
	// Flag is the single-character short-form trigger, unique within a
	// catalog.
	Flag rune
	// Name is the long-form trigger and the key under which the parsed
	// value is stored, unique within a catalog.
	Name string
	// TakesValue reports whether this option consumes a value token.
	TakesValue bool
	// Default is used only when the option is present but no explicit value
	// was supplied. It is never injected for options the user did not
	// mention. Meaningful only when HasDefault is set.
	Default string
	// HasDefault distinguishes an empty-string default from no default.
	HasDefault bool
	// Validator, when non-nil, is applied to any value actually determined
	// for this option, including an applied default.
	Validator Validator
	// Help is the description rendered in usage output.
	Help string
}

// Catalog is the compiled, immutable set of option definitions for one
// tool. Compilation builds the short-flag and long-name lookup indices
// once; parsing assumes they are total and never re-validates them. A
// compiled catalog is read-only and safe for concurrent parses.
type Catalog struct {
	defs   []Definition
	byFlag map[rune]int
	byName map[string]int
}

// Compile builds a catalog from an ordered list of definitions. It fails
// with a DuplicateOption error the first time either index would receive a
// second entry for the same flag character or long name.
func Compile(defs []Definition) (*Catalog, error) {
	c := &Catalog{
		defs:   make([]Definition, len(defs)),
		byFlag: make(map[rune]int, len(defs)),
		byName: make(map[string]int, len(defs)),
	}
	copy(c.defs, defs)

	for i, def := range c.defs {
		if _, ok := c.byFlag[def.Flag]; ok {
			return nil, errDuplicate(fmt.Sprintf("flag -%c", def.Flag))
		}

		if _, ok := c.byName[def.Name]; ok {
			return nil, errDuplicate("option --" + def.Name)
		}

		c.byFlag[def.Flag] = i
		c.byName[def.Name] = i
	}

	return c, nil
}

// MustCompile is like [Compile] but panics on a duplicate trigger. It is
// intended for static tool catalogs assembled at startup.
func MustCompile(defs []Definition) *Catalog {
	c, err := Compile(defs)
	if err != nil {
		panic(err)
	}

	return c
}

// Len returns the number of definitions in the catalog.
func (c *Catalog) Len() int { return len(c.defs) }

// Definitions returns an iterator over the definitions in catalog order.
func (c *Catalog) Definitions() iter.Seq[Definition] {
	return func(yield func(Definition) bool) {
		for _, def := range c.defs {
			if !yield(def) {
				return
			}
		}
	}
}

// Lookup returns the definition registered under the given long name.
func (c *Catalog) Lookup(name string) (Definition, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Definition{}, false
	}

	return c.defs[i], true
}

// LookupFlag returns the definition registered under the given short flag.
func (c *Catalog) LookupFlag(flag rune) (Definition, bool) {
	i, ok := c.byFlag[flag]
	if !ok {
		return Definition{}, false
	}

	return c.defs[i], true
}
