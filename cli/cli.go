package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/webzeppelin/rusty-sharutils/log"
	"github.com/webzeppelin/rusty-sharutils/opt"
	"github.com/webzeppelin/rusty-sharutils/pkg"
)

// Tool describes one binary of the suite: its identity for help and
// version output, its options beyond the standard set, and its domain
// entry point invoked after the common options are dispatched.
type Tool struct {
	Name        string
	Description string
	Usage       string
	Options     []opt.Definition

	// Main runs the tool's domain logic against the validated command.
	// It is not called when a standard option (help, version, ...) has
	// already completed the invocation.
	Main func(ctx context.Context, cmd *opt.Command) error
}

// ExitError carries the process exit code decided for a failed
// invocation. The wrapped error has already been reported to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Run executes one tool invocation over the full argument vector
// (including the executable path). It returns nil on success and an
// [*ExitError] after reporting any failure to standard error.
func Run(ctx context.Context, tool *Tool, args ...string) error {
	configureLog()

	stop := startProfiling()
	defer stop()

	return run(ctx, tool, os.Stdout, os.Stderr, args)
}

// run is Run with the output streams injected for tests.
func run(
	ctx context.Context,
	tool *Tool,
	stdout, stderr io.Writer,
	args []string,
) error {
	catalog, err := opt.Compile(opt.Merge(opt.Standard(), tool.Options))
	if err != nil {
		// A broken static catalog is a programming error in the tool.
		fmt.Fprintf(stderr, "%s: internal error: %v\n", tool.Name, err)

		return &ExitError{Code: 1, Err: err}
	}

	cmd, err := catalog.Parse(args)
	if err != nil {
		reportParseError(stderr, catalog, err)

		return &ExitError{Code: 1, Err: err}
	}

	log.Debug("parsed command line",
		slog.String("path", cmd.Path),
		slog.Any("arguments", cmd.Args),
	)

	if path, ok := cmd.Value("load-opts"); ok {
		cmd, err = loadOpts(catalog, cmd, path)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)

			return &ExitError{Code: 1, Err: err}
		}
	}

	help := catalog.Help(tool.Name, tool.Description, tool.Usage)

	switch {
	case cmd.IsSet("help"):
		fmt.Fprint(stdout, help)

		return nil

	case cmd.IsSet("more-help"):
		if err := pageHelp(ctx, stdout, help); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)

			return &ExitError{Code: 1, Err: err}
		}

		return nil

	case cmd.IsSet("version"):
		printVersion(stdout, tool.Name, cmd.ValueOr("version", "copyright"))

		return nil
	}

	if path, ok := cmd.Value("save-opts"); ok {
		if err := saveOpts(path, cmd); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)

			return &ExitError{Code: 1, Err: err}
		}

		return nil
	}

	if err := tool.Main(ctx, cmd); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", tool.Name, err)

		return &ExitError{Code: 1, Err: err}
	}

	return nil
}

// reportParseError renders a parse failure the way every tool in the
// suite does: the category and detail, a near-miss suggestion for unknown
// long options, and a pointer at --help.
func reportParseError(w io.Writer, catalog *opt.Catalog, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	if hint := suggest(catalog, err); hint != "" {
		fmt.Fprintln(w, hint)
	}

	fmt.Fprintln(w, "\nUse --help for usage information.")
}

// Sentinel returned by tools for argument-count violations, reported with
// the usage pattern attached.
func usageError(tool *Tool, format string, args ...any) error {
	return pkg.ErrUsage.
		Wrapf(format, args...).
		Wrapf("usage: %s %s", tool.Name, tool.Usage)
}
