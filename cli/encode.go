package cli

import (
	"context"
	"encoding/base64"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/webzeppelin/rusty-sharutils/log"
	"github.com/webzeppelin/rusty-sharutils/opt"
	"github.com/webzeppelin/rusty-sharutils/pkg"
	"github.com/webzeppelin/rusty-sharutils/uu"
)

// stdinMode is the file mode recorded on the begin line when the input
// is not a regular file.
const stdinMode = fs.FileMode(0o644)

// UUEncode returns the uuencode tool definition.
func UUEncode() *Tool {
	tool := &Tool{
		Name:        "uuencode",
		Description: "Encode a file into email-friendly text",
		Usage:       "[OPTIONS] [input-file] output-name",
		Options: []opt.Definition{
			{
				Flag: 'm',
				Name: "base64",
				Help: "Convert using base64 instead of traditional uuencoding",
			},
			{
				Flag: 'e',
				Name: "encode-file-name",
				Help: "Encode the output file name",
			},
		},
	}

	tool.Main = func(_ context.Context, cmd *opt.Command) error {
		return encodeMain(tool, cmd)
	}

	return tool
}

func encodeMain(tool *Tool, cmd *opt.Command) error {
	var (
		in     io.Reader = os.Stdin
		mode             = stdinMode
		remote string
	)

	switch len(cmd.Args) {
	case 1:
		remote = cmd.Args[0]

	case 2:
		if cmd.Args[0] != "-" {
			f, err := os.Open(cmd.Args[0])
			if err != nil {
				return pkg.ErrReadInput.Wrap(err)
			}
			defer f.Close()

			if fi, err := f.Stat(); err == nil {
				mode = fi.Mode().Perm()
			}

			in = f
		}

		remote = cmd.Args[1]

	case 0:
		return usageError(tool, "missing required output-name argument")

	default:
		return usageError(tool, "too many arguments")
	}

	if cmd.IsSet("encode-file-name") {
		remote = base64.StdEncoding.EncodeToString([]byte(remote))
	}

	format := uu.Traditional
	if cmd.IsSet("base64") {
		format = uu.Base64
	}

	log.Debug("encoding",
		slog.String("remote", remote),
		slog.String("format", format.String()),
		slog.String("mode", mode.String()),
	)

	return uu.Encode(os.Stdout, in, uu.Header{Mode: mode, Name: remote}, format)
}
