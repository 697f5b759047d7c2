package uu

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/webzeppelin/rusty-sharutils/pkg"
)

// Encode reads the entire stream r and writes it to w in the given format,
// framed by the begin header and end trailer carrying hdr. The mode is
// truncated to its permission bits on the begin line.
func Encode(w io.Writer, r io.Reader, hdr Header, format Format) error {
	bw := bufio.NewWriter(w)

	keyword := "begin"
	if format == Base64 {
		keyword = "begin-base64"
	}

	_, err := fmt.Fprintf(
		bw, "%s %03o %s\n", keyword, hdr.Mode.Perm(), hdr.Name,
	)
	if err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}

	if format == Base64 {
		err = encodeBase64(bw, r)
	} else {
		err = encodeTraditional(bw, r)
	}

	if err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}

	return nil
}

// encodeTraditional writes the historical uuencoded body: each line holds
// a length character followed by up to 60 data characters covering up to
// 45 raw bytes, terminated by a zero-length line and the end keyword.
func encodeTraditional(bw *bufio.Writer, r io.Reader) error {
	buf := make([]byte, lineBytes)

	for {
		n, err := io.ReadFull(r, buf)
		if err == io.EOF {
			break
		}

		if err != nil && err != io.ErrUnexpectedEOF {
			return pkg.ErrReadInput.Wrap(err)
		}

		if n > 0 {
			if werr := writeLine(bw, buf[:n]); werr != nil {
				return werr
			}
		}

		if err == io.ErrUnexpectedEOF {
			break
		}
	}

	if _, err := bw.WriteString("`\nend\n"); err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}

	return nil
}

// writeLine encodes one run of up to 45 raw bytes as a single body line.
func writeLine(bw *bufio.Writer, raw []byte) error {
	line := make([]byte, 0, 1+(lineBytes+2)/3*4)
	line = append(line, encChar(byte(len(raw))))

	for i := 0; i < len(raw); i += 3 {
		var b [3]byte

		copy(b[:], raw[i:])
		line = append(line,
			encChar(b[0]>>2),
			encChar(b[0]<<4|b[1]>>4),
			encChar(b[1]<<2|b[2]>>6),
			encChar(b[2]),
		)
	}

	line = append(line, '\n')

	if _, err := bw.Write(line); err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}

	return nil
}

// encodeBase64 writes a standard base64 body wrapped at the sharutils
// column width, terminated by the ==== trailer.
func encodeBase64(bw *bufio.Writer, r io.Reader) error {
	wrapper := &lineWrapper{w: bw, width: wrapColumn}
	enc := base64.NewEncoder(base64.StdEncoding, wrapper)

	if _, err := io.Copy(enc, r); err != nil {
		return pkg.ErrReadInput.Wrap(err)
	}

	if err := enc.Close(); err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}

	if err := wrapper.flush(); err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}

	if _, err := bw.WriteString("====\n"); err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}

	return nil
}

// lineWrapper inserts a newline after every width bytes written.
type lineWrapper struct {
	w     *bufio.Writer
	width int
	col   int
}

func (lw *lineWrapper) Write(p []byte) (int, error) {
	written := 0

	for len(p) > 0 {
		room := lw.width - lw.col
		if room > len(p) {
			room = len(p)
		}

		n, err := lw.w.Write(p[:room])
		written += n

		if err != nil {
			return written, err
		}

		lw.col += n
		p = p[n:]

		if lw.col == lw.width {
			if err := lw.w.WriteByte('\n'); err != nil {
				return written, err
			}

			lw.col = 0
		}
	}

	return written, nil
}

// flush terminates a final partial line.
func (lw *lineWrapper) flush() error {
	if lw.col == 0 {
		return nil
	}

	lw.col = 0

	return lw.w.WriteByte('\n')
}
