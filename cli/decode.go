package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/webzeppelin/rusty-sharutils/log"
	"github.com/webzeppelin/rusty-sharutils/opt"
	"github.com/webzeppelin/rusty-sharutils/pkg"
	"github.com/webzeppelin/rusty-sharutils/uu"
)

// UUDecode returns the uudecode tool definition.
func UUDecode() *Tool {
	tool := &Tool{
		Name:        "uudecode",
		Description: "Decode an encoded file",
		Usage:       "[OPTIONS] [input-file...]",
		Options: []opt.Definition{
			{
				Flag:       'o',
				Name:       "output-file",
				TakesValue: true,
				Validator:  opt.ValidateFilePath,
				Help:       "Direct output to file",
			},
			{
				Flag: 'c',
				Name: "ignore-chmod",
				Help: "Ignore fchmod(3P) errors",
			},
		},
	}

	tool.Main = func(_ context.Context, cmd *opt.Command) error {
		return decodeMain(tool, cmd)
	}

	return tool
}

func decodeMain(tool *Tool, cmd *opt.Command) error {
	// Each encoded stream names its own output file; a single override
	// cannot serve several of them.
	if cmd.IsSet("output-file") && len(cmd.Args) > 1 {
		return usageError(tool,
			"--output-file cannot be used when multiple input files are provided")
	}

	if len(cmd.Args) == 0 {
		return decodeStream(cmd, os.Stdin)
	}

	for _, path := range cmd.Args {
		if path == "-" {
			if err := decodeStream(cmd, os.Stdin); err != nil {
				return err
			}

			continue
		}

		f, err := os.Open(path)
		if err != nil {
			return pkg.ErrReadInput.Wrap(err)
		}

		err = decodeStream(cmd, f)
		f.Close()

		if err != nil {
			return pkg.MakeError(err).Wrapf("%s", path)
		}
	}

	return nil
}

// decodeStream decodes one encoded stream and writes the payload to the
// file named by --output-file or the begin header. The header's mode is
// applied to the created file unless --ignore-chmod absorbs a failure.
func decodeStream(cmd *opt.Command, r io.Reader) error {
	d, err := uu.NewDecoder(r)
	if err != nil {
		return err
	}

	name := cmd.ValueOr("output-file", d.Header.Name)

	log.Debug("decoding",
		slog.String("output", name),
		slog.String("format", d.Format.String()),
		slog.String("mode", d.Header.Mode.String()),
	)

	if name == "-" {
		return d.Decode(os.Stdout)
	}

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}
	defer f.Close()

	if err := d.Decode(f); err != nil {
		return err
	}

	if err := f.Chmod(d.Header.Mode.Perm()); err != nil {
		if !cmd.IsSet("ignore-chmod") {
			return pkg.ErrWriteOutput.Wrap(err)
		}

		log.Warn("ignoring chmod failure",
			slog.String("output", name),
			errAttr(err),
		)
	}

	return nil
}
