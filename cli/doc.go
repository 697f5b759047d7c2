// Package cli is the shared runtime of the sharutils tools. It assembles
// each tool's option catalog, runs the parsing engine over the raw
// argument vector, and handles the options common to every tool: help,
// the paged extended help, version banners, and option-state save/load.
//
// All diagnostic rendering, stream conventions, and exit-code policy live
// here: parse failures are reported to standard error as
// "Error: <category>: <detail>" with a hint to consult --help, and the
// process exits non-zero. The parsing engine itself never prints or
// terminates the process.
package cli
