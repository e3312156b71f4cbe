package mpic

import (
	"github.com/mrjoshuak/mpic/colorspace"
	"github.com/mrjoshuak/mpic/internal/block"
)

// ImageInfo describes the dimensions recorded in an mPic stream's header.
type ImageInfo struct {
	Width  int
	Height int
}

// Decoder parses an mPic byte stream's header up front and offers several
// ways to materialize the pixel data, all built on one shared block-walk
// (walk) so that the traversal and error handling are written once:
// opening a stream (parsing its header) is kept separate from the
// Decode/DecodeTo/DecodeCallback calls that actually produce pixels.
type Decoder struct {
	blob   []byte
	header Header
}

// NewDecoder parses blob's header and returns a Decoder ready to produce
// pixels. It does not touch any block data yet, so a corrupt or truncated
// chunk only surfaces once a Decode* method is called.
func NewDecoder(blob []byte) (*Decoder, error) {
	header, err := decodeHeader(blob)
	if err != nil {
		return nil, err
	}
	return &Decoder{blob: blob, header: header}, nil
}

// Info returns the image dimensions recorded in the header.
func (d *Decoder) Info() ImageInfo {
	return ImageInfo{Width: int(d.header.Width), Height: int(d.header.Height)}
}

// sink receives one decoded block's three YUV666 planes, already
// demosaiced to full 8x8 resolution, at the block's pixel origin (x8,
// y8). This is the block-sink capability every output-shape method below
// supplies a different implementation of.
type sink func(x8, y8 int, y, u, v [64]byte)

// walk parses the chunk stream following the header, decoding each block
// in row-major order (x8 innermost, y8 outermost) and calling fn once per
// block with its pixel-space origin and decoded planes. It is the one
// place that understands the length-prefixed chunk layout; every public
// Decode* method below is a thin sink on top of it.
func (d *Decoder) walk(fn sink) error {
	width := int(d.header.Width)
	height := int(d.header.Height)
	cursor := HeaderSize

	for y8 := 0; y8 < height; y8 += blockEdge {
		for x8 := 0; x8 < width; x8 += blockEdge {
			if cursor >= len(d.blob) {
				return wrapInvalidData(chunkTruncatedError{})
			}
			length := int(d.blob[cursor])
			start := cursor + 1
			end := start + length
			if end > len(d.blob) {
				return wrapInvalidData(chunkTruncatedError{})
			}

			y, u, v, err := block.DecodePlanes(d.blob[start:end])
			if err != nil {
				return wrapInvalidData(err)
			}
			fn(x8, y8, y, u, v)

			cursor = end
		}
	}
	return nil
}

// chunkTruncatedError reports a chunk length prefix running past the end
// of the blob, a failure mode block.DecodePlanes itself can't see because
// it's only handed the chunk's own bytes.
type chunkTruncatedError struct{}

func (chunkTruncatedError) Error() string { return "chunk data truncated" }

// Decode parses and fully decodes blob into a freshly allocated row-major
// RGB buffer (3 bytes per pixel, no padding).
func (d *Decoder) Decode() ([]byte, error) {
	width, height := int(d.header.Width), int(d.header.Height)
	out := make([]byte, width*height*3)
	if err := d.DecodeTo(out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeTo decodes into a caller-owned buffer, avoiding the allocation
// Decode makes. out must hold at least Width*Height*3 bytes, row-major
// with no padding between rows.
func (d *Decoder) DecodeTo(out []byte) error {
	width, height := int(d.header.Width), int(d.header.Height)
	if len(out) < width*height*3 {
		return ErrInvalidInput
	}
	stride := width * 3

	return d.walk(func(x8, y8 int, y, u, v [64]byte) {
		for dy := 0; dy < blockEdge; dy++ {
			row := (y8+dy)*stride + x8*3
			for dx := 0; dx < blockEdge; dx++ {
				idx := dy*blockEdge + dx
				r, g, b := colorspace.YUV666ToRGB(y[idx], u[idx], v[idx])
				off := row + dx*3
				out[off], out[off+1], out[off+2] = r, g, b
			}
		}
	})
}

// DecodeCallback decodes without allocating an output image at all,
// invoking fn once per pixel with its coordinates and RGB value. This is
// the shape an embedded decoder streaming straight to a display's
// framebuffer would use, where there is no reason to ever hold the whole
// image in memory at once.
func (d *Decoder) DecodeCallback(fn func(x, y int, r, g, b byte)) error {
	return d.walk(func(x8, y8 int, y, u, v [64]byte) {
		for dy := 0; dy < blockEdge; dy++ {
			for dx := 0; dx < blockEdge; dx++ {
				idx := dy*blockEdge + dx
				r, g, b := colorspace.YUV666ToRGB(y[idx], u[idx], v[idx])
				fn(x8+dx, y8+dy, r, g, b)
			}
		}
	})
}

// DecodeRGBA decodes into a row-major RGBA buffer (4 bytes per pixel),
// synthesizing an opaque 0xff alpha byte for every pixel. This is the
// buffer shape image/draw and most GUI toolkits expect, spelled out as
// its own method so callers don't need a separate RGB-to-RGBA pass.
func (d *Decoder) DecodeRGBA() ([]byte, error) {
	width, height := int(d.header.Width), int(d.header.Height)
	out := make([]byte, width*height*4)
	stride := width * 4

	err := d.walk(func(x8, y8 int, y, u, v [64]byte) {
		for dy := 0; dy < blockEdge; dy++ {
			row := (y8+dy)*stride + x8*4
			for dx := 0; dx < blockEdge; dx++ {
				idx := dy*blockEdge + dx
				r, g, b := colorspace.YUV666ToRGB(y[idx], u[idx], v[idx])
				off := row + dx*4
				out[off], out[off+1], out[off+2], out[off+3] = r, g, b, 0xff
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
