package opt

import (
	"iter"
	"strings"
)

// Command is the immutable result of a successful parse.
//
// Presence of an option name means the user specified that option; absence
// means unset. No defaults are back-filled for options the user never
// mentioned.
type Command struct {
	// Path is the first raw argument, the invoked executable's path. It is
	// recorded verbatim and never validated.
	Path string
	// Args holds the remaining positional tokens in input order.
	Args []string

	set   map[string]setting
	order []string
}

type setting struct {
	value    string
	hasValue bool
}

// IsSet reports whether the user specified the named option.
func (c *Command) IsSet(name string) bool {
	_, ok := c.set[name]

	return ok
}

// Value returns the resolved value of the named option. The second result
// is false when the option was not specified or carries no value.
func (c *Command) Value(name string) (string, bool) {
	s, ok := c.set[name]
	if !ok || !s.hasValue {
		return "", false
	}

	return s.value, true
}

// ValueOr returns the resolved value of the named option, or fallback when
// the option was not specified or carries no value.
func (c *Command) ValueOr(name, fallback string) string {
	if v, ok := c.Value(name); ok {
		return v
	}

	return fallback
}

// HasValue reports whether the named option resolved a value, as opposed
// to being merely present as a bare flag.
func (c *Command) HasValue(name string) bool {
	s, ok := c.set[name]

	return ok && s.hasValue
}

// Names returns an iterator over the specified option names in the order
// they were recorded. Values are read through [Command.Value] and
// [Command.HasValue].
func (c *Command) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range c.order {
			if !yield(name) {
				return
			}
		}
	}
}

// Parse scans a raw argument vector against the catalog and produces
// either a [Command] or an [*Error] describing the first rule violation.
// The first token is the executable path and is never interpreted as an
// option. An empty vector is itself an error.
//
// The scan is a single left-to-right pass with one token of lookahead and
// no backtracking. Scanning stops at the -- terminator or at the first
// positional token; every remaining token is collected verbatim.
func (c *Catalog) Parse(args []string) (*Command, error) {
	if len(args) == 0 {
		return nil, errUnknown("no executable path in argument list")
	}

	cmd := &Command{
		Path: args[0],
		Args: []string{},
		set:  make(map[string]setting),
	}

	for i := 1; i < len(args); i++ {
		tok := args[i]

		switch {
		case tok == "--":
			cmd.Args = append(cmd.Args, args[i+1:]...)

			return cmd, nil

		case strings.HasPrefix(tok, "--"):
			n, err := c.scanLong(cmd, args, i)
			if err != nil {
				return nil, err
			}

			i += n

		case len(tok) > 1 && tok[0] == '-':
			n, err := c.scanGroup(cmd, args, i)
			if err != nil {
				return nil, err
			}

			i += n

		default:
			// First positional token: options may not follow it. A bare "-"
			// lands here as a conventional stdio placeholder.
			cmd.Args = append(cmd.Args, args[i:]...)

			return cmd, nil
		}
	}

	return cmd, nil
}

// scanLong handles one --name or --name=value token at args[i]. It returns
// the number of extra tokens consumed as a value (0 or 1).
func (c *Catalog) scanLong(cmd *Command, args []string, i int) (int, error) {
	name, inline, assigned := strings.Cut(args[i][2:], "=")
	trigger := "--" + name

	def, ok := c.Lookup(name)
	if !ok {
		return 0, errUnknown(trigger)
	}

	if cmd.IsSet(def.Name) {
		return 0, errDuplicate(trigger)
	}

	if assigned {
		if !def.TakesValue {
			return 0, &Error{
				Category: ValidationError,
				Detail:   trigger + " does not accept a value",
			}
		}

		return 0, record(cmd, def, trigger, inline, true)
	}

	if !def.TakesValue {
		return 0, record(cmd, def, trigger, "", false)
	}

	return resolve(cmd, def, trigger, args, i)
}

// scanGroup handles one combined short-flag group token at args[i],
// resolving each character independently in left-to-right order. It
// returns the number of extra tokens consumed as a value (0 or 1).
func (c *Catalog) scanGroup(cmd *Command, args []string, i int) (int, error) {
	group := []rune(args[i][1:])

	for j, flag := range group {
		trigger := "-" + string(flag)

		def, ok := c.LookupFlag(flag)
		if !ok {
			return 0, errUnknown(trigger)
		}

		if cmd.IsSet(def.Name) {
			return 0, errDuplicate(trigger)
		}

		if !def.TakesValue {
			if err := record(cmd, def, trigger, "", false); err != nil {
				return 0, err
			}

			continue
		}

		// A value-taking flag is only unambiguous in final position.
		if j != len(group)-1 {
			return 0, errCombination(flag)
		}

		return resolve(cmd, def, trigger, args, i)
	}

	return 0, nil
}

// resolve applies the value resolution rule for a value-taking option with
// no inline value: consume the next token unless it is absent or begins
// with '-', otherwise fall back to the configured default, otherwise fail.
func resolve(
	cmd *Command,
	def Definition,
	trigger string,
	args []string,
	i int,
) (int, error) {
	if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
		return 1, record(cmd, def, trigger, args[i+1], true)
	}

	if def.HasDefault {
		return 0, record(cmd, def, trigger, def.Default, true)
	}

	return 0, errMissingValue(trigger)
}

// record validates a determined value (if any) and stores the option.
// Validation failure aborts the parse; nothing is recorded.
func record(
	cmd *Command,
	def Definition,
	trigger, value string,
	hasValue bool,
) error {
	if hasValue && def.Validator != nil {
		if err := def.Validator(value); err != nil {
			return errValidation(trigger, err)
		}
	}

	cmd.set[def.Name] = setting{value: value, hasValue: hasValue}
	cmd.order = append(cmd.order, def.Name)

	return nil
}
