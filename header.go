package mpic

import "encoding/binary"

// HeaderSize is the fixed size in bytes of the mPic file header: a 4-byte
// magic, little-endian width and height, and a 1-byte version. The header
// is read with plain encoding/binary calls rather than a general
// streaming reader abstraction, since it is nine fixed bytes with no
// variable-length or nested fields.
const HeaderSize = 9

// blockEdge is mPic's fixed block edge length in pixels; both image
// dimensions must be a multiple of it.
const blockEdge = 8

// magic is the mPic file signature: the literal bytes \x00 m p i.
var magic = [4]byte{0x00, 'm', 'p', 'i'}

// currentVersion is the only version byte this decoder accepts. Any other
// value is treated as invalid data rather than attempting a best-effort
// decode, per the format's versioning policy.
const currentVersion = 0x00

// Header is the 9-byte mPic container header.
type Header struct {
	Width  uint16
	Height uint16
}

// Encode writes the header's 9 bytes: magic, little-endian width and
// height, then the version byte.
func (h Header) Encode() [HeaderSize]byte {
	var b [HeaderSize]byte
	copy(b[0:4], magic[:])
	binary.LittleEndian.PutUint16(b[4:6], h.Width)
	binary.LittleEndian.PutUint16(b[6:8], h.Height)
	b[8] = currentVersion
	return b
}

// decodeHeader parses and validates the header at the start of blob. It
// enforces: magic matches, version is the one supported value, width and
// height are both nonzero multiples of blockEdge.
func decodeHeader(blob []byte) (Header, error) {
	if len(blob) < HeaderSize {
		return Header{}, ErrInvalidData
	}
	if [4]byte(blob[0:4]) != magic {
		return Header{}, ErrInvalidData
	}
	if blob[8] != currentVersion {
		return Header{}, ErrInvalidData
	}

	width := binary.LittleEndian.Uint16(blob[4:6])
	height := binary.LittleEndian.Uint16(blob[6:8])
	if !validGeometry(width, height) {
		return Header{}, ErrInvalidData
	}

	return Header{Width: width, Height: height}, nil
}

func validGeometry(width, height uint16) bool {
	return width > 0 && height > 0 && width%blockEdge == 0 && height%blockEdge == 0
}
