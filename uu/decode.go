package uu

import (
	"bufio"
	"encoding/base64"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/webzeppelin/rusty-sharutils/pkg"
)

// Decoder reads one encoded stream: a begin header, the body, and the end
// trailer. Text preceding the header (mail headers, commentary) is
// skipped, matching traditional uudecode behavior.
type Decoder struct {
	// Header holds the file mode and remote name parsed from the begin
	// line.
	Header Header
	// Format reports which body encoding the header announced.
	Format Format

	s    *bufio.Scanner
	line int
}

// NewDecoder scans r for a begin or begin-base64 header and returns a
// decoder positioned at the start of the body. It fails with
// [pkg.ErrNoBeginLine] when the stream ends without a header and with
// [pkg.ErrBadHeader] when a header is present but malformed.
func NewDecoder(r io.Reader) (*Decoder, error) {
	d := &Decoder{s: bufio.NewScanner(r)}

	for d.s.Scan() {
		d.line++
		text := d.s.Text()

		var format Format

		switch {
		case strings.HasPrefix(text, "begin-base64 "):
			format = Base64
		case strings.HasPrefix(text, "begin "):
			format = Traditional
		default:
			continue
		}

		hdr, err := parseHeader(text)
		if err != nil {
			return nil, err
		}

		d.Header = hdr
		d.Format = format

		return d, nil
	}

	if err := d.s.Err(); err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}

	return nil, pkg.ErrNoBeginLine
}

// parseHeader splits "begin[-base64] <octal mode> <name>". The name is
// everything after the mode field, so names containing spaces survive.
func parseHeader(text string) (Header, error) {
	fields := strings.SplitN(text, " ", 3)
	if len(fields) != 3 || fields[2] == "" {
		return Header{}, pkg.ErrBadHeader.Wrapf("%q", text)
	}

	mode, err := strconv.ParseUint(fields[1], 8, 32)
	if err != nil {
		return Header{}, pkg.ErrBadHeader.Wrapf("bad mode in %q", text)
	}

	return Header{Mode: fs.FileMode(mode), Name: fields[2]}, nil
}

// Decode writes the decoded body to w. It fails with [pkg.ErrCorruptData]
// on an undecodable body line and with [pkg.ErrMissingEnd] when the
// stream ends before its trailer.
func (d *Decoder) Decode(w io.Writer) error {
	if d.Format == Base64 {
		return d.decodeBase64(w)
	}

	return d.decodeTraditional(w)
}

func (d *Decoder) decodeTraditional(w io.Writer) error {
	for d.s.Scan() {
		d.line++
		text := d.s.Text()

		if text == "" {
			return pkg.ErrCorruptData.Wrapf("empty line %d", d.line)
		}

		n := int(decChar(text[0]))
		if n == 0 {
			// Zero-length line terminates the body; the end keyword must
			// follow.
			if !d.s.Scan() || strings.TrimRight(d.s.Text(), " ") != "end" {
				return pkg.ErrMissingEnd
			}

			return nil
		}

		raw, err := decodeLine(text, n)
		if err != nil {
			return pkg.MakeError(err).Wrapf("line %d", d.line)
		}

		if _, err := w.Write(raw); err != nil {
			return pkg.ErrWriteOutput.Wrap(err)
		}
	}

	if err := d.s.Err(); err != nil {
		return pkg.ErrReadInput.Wrap(err)
	}

	return pkg.ErrMissingEnd
}

// decodeLine unpacks one traditional body line announcing n raw bytes.
// Characters beyond the announced length are ignored, tolerating trailing
// whitespace added in transit.
func decodeLine(text string, n int) ([]byte, error) {
	need := 1 + (n+2)/3*4
	if len(text) < need {
		return nil, pkg.ErrCorruptData.Wrapf("short line")
	}

	raw := make([]byte, 0, n)

	for i := 1; i < need; i += 4 {
		v0 := decChar(text[i])
		v1 := decChar(text[i+1])
		v2 := decChar(text[i+2])
		v3 := decChar(text[i+3])

		raw = append(raw, v0<<2|v1>>4, v1<<4|v2>>2, v2<<6|v3)
	}

	return raw[:n], nil
}

func (d *Decoder) decodeBase64(w io.Writer) error {
	var body strings.Builder

	for d.s.Scan() {
		d.line++
		text := strings.TrimRight(d.s.Text(), " ")

		if text == "====" {
			raw, err := base64.StdEncoding.DecodeString(body.String())
			if err != nil {
				return pkg.ErrCorruptData.Wrap(err)
			}

			if _, err := w.Write(raw); err != nil {
				return pkg.ErrWriteOutput.Wrap(err)
			}

			return nil
		}

		body.WriteString(text)
	}

	if err := d.s.Err(); err != nil {
		return pkg.ErrReadInput.Wrap(err)
	}

	return pkg.ErrMissingEnd
}
