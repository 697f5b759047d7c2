// Package opt implements the command-line option parsing engine shared by
// the sharutils tools.
//
// Callers describe the options a tool recognizes as an ordered list of
// [Definition] values and compile them into a [Catalog]. The catalog is
// immutable once compiled and may be shared by concurrent parses. Parsing a
// raw argument vector against a catalog yields either a [Command] holding
// the recognized options and positional arguments, or an [*Error] naming
// the first rule violation encountered.
//
// The grammar is the traditional POSIX/GNU style:
//
//   - combined short flags: -abc
//   - long options: --name and --name=value
//   - a value-taking option may take its value from the next token
//     (-o file, --output-file file), from an inline =value, or from its
//     configured default
//   - the -- terminator stops all option interpretation
//   - the first positional token stops option scanning; options may not
//     appear after it
//   - a bare - is a positional token (conventionally a stdio placeholder)
//
// A value-taking short flag must be the last flag in a combined group, and
// a next-token value must not begin with '-'. Together these rules keep
// -o value, -o (bare), and -o followed by a positional unambiguous. The
// cost, inherited from traditional Unix tools and preserved here, is that
// a value which itself begins with '-' (for example a negative number) can
// only be supplied with the --name=value form or through a default.
package opt
