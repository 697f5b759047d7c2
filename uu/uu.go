// Package uu implements the uuencode binary-to-text codec used by the
// sharutils tools: the traditional 3-byte to 4-character packing with its
// historical character set, and the base64 variant, both inside the
// begin/end framing that carries the target file name and mode.
//
// The codec consumes already-parsed option values and byte streams only;
// it never inspects command-line arguments itself.
package uu

import (
	"io/fs"
)

// Format selects the body encoding written between the begin and end
// framing lines.
type Format int

const (
	// Traditional is the historical uuencoding: each 6-bit value offset
	// by 0x20, with zero rendered as '`'.
	Traditional Format = iota
	// Base64 is the begin-base64 variant with a standard base64 body.
	Base64
)

// String returns the format name used in diagnostics.
func (f Format) String() string {
	if f == Base64 {
		return "base64"
	}

	return "traditional"
}

// Header carries the framing metadata of one encoded stream: the file
// mode and remote name written on the begin line.
type Header struct {
	Mode fs.FileMode
	Name string
}

// lineBytes is the maximum number of raw bytes encoded per traditional
// body line.
const lineBytes = 45

// wrapColumn is the output line width of the base64 body.
const wrapColumn = 60

// encChar maps one 6-bit value to its traditional output character.
// Zero is rendered as '`' rather than space, matching GNU sharutils.
func encChar(v byte) byte {
	v &= 0x3f
	if v == 0 {
		return '`'
	}

	return v + 0x20
}

// decChar maps one traditional output character back to its 6-bit value.
// Both ' ' and '`' decode to zero, accepting either historical variant.
func decChar(c byte) byte {
	return (c - 0x20) & 0x3f
}
