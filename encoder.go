package mpic

import "github.com/mrjoshuak/mpic/internal/block"

// maxDimension is the largest width/height mPic supports: the largest
// multiple of blockEdge that still fits in the header's uint16 fields.
const maxDimension = 0xfff8 // 65528

// Encode converts a packed row-major RGB buffer (3 bytes per pixel, width
// W, height H) into an mPic byte stream. Both W and H must be in
// [8, 65528] and a multiple of 8; rgb must hold at least W*H*3 bytes.
// Blocks are emitted in row-major order, one row of blocks (increasing
// x8) at a time, outer loop over y8 — the same traversal the decoder
// uses to consume them.
func Encode(rgb []byte, width, height int) ([]byte, error) {
	if !validEncodeDimension(width) || !validEncodeDimension(height) {
		return nil, ErrInvalidInput
	}
	if len(rgb) < width*height*3 {
		return nil, ErrInvalidInput
	}

	header := Header{Width: uint16(width), Height: uint16(height)}
	headerBytes := header.Encode()

	stride := width * 3
	out := make([]byte, 0, len(headerBytes)+width*height/4) // rough size hint
	out = append(out, headerBytes[:]...)

	for y8 := 0; y8 < height; y8 += blockEdge {
		for x8 := 0; x8 < width; x8 += blockEdge {
			out = append(out, block.EncodeBlock(rgb, stride, x8, y8)...)
		}
	}

	return out, nil
}

func validEncodeDimension(d int) bool {
	return d >= blockEdge && d <= maxDimension && d%blockEdge == 0
}
