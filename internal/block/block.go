// Package block implements mPic's block pipeline: partitioning the image
// into 8x8 tiles, converting each tile's pixels to the 96-byte YUV666
// payload (or back), and delegating compression to chunkcodec. It walks
// an image in fixed-size blocks, reorganizes scanline-order pixel data
// into per-block samples, and hands each block to the chunk-level codec:
// gather samples for a block, hand them to the codec, scatter the result
// back into the caller's buffer.
package block

import (
	"github.com/mrjoshuak/mpic/chunkcodec"
	"github.com/mrjoshuak/mpic/colorspace"
	"github.com/mrjoshuak/mpic/internal/mosaic"
)

// Size is the fixed block edge length in pixels.
const Size = 8

// EncodeBlock converts one 8x8 block of RGB pixels starting at (x0, y0)
// into a length-prefixed chunk: a single byte giving the chunk length,
// followed by the chunk bytes themselves. rgb is the full image's
// row-major RGB buffer with the given byte stride (width*3); the block
// must lie entirely within bounds, i.e. the caller guarantees the image
// dimensions are multiples of Size.
func EncodeBlock(rgb []byte, stride, x0, y0 int) []byte {
	var payload [96]byte
	var y, u, v [64]byte

	for dy := 0; dy < Size; dy++ {
		row := (y0+dy)*stride + x0*3
		for dx := 0; dx < Size; dx++ {
			off := row + dx*3
			r, g, b := rgb[off], rgb[off+1], rgb[off+2]
			idx := dy*Size + dx
			y[idx], u[idx], v[idx] = colorspace.RGBToYUV666(r, g, b)
		}
	}

	umos := mosaic.Mosaic(&u)
	vmos := mosaic.Mosaic(&v)

	copy(payload[0:64], y[:])
	copy(payload[64:80], umos[:])
	copy(payload[80:96], vmos[:])

	chunk := chunkcodec.Compress(&payload)
	out := make([]byte, 1+len(chunk))
	out[0] = byte(len(chunk))
	copy(out[1:], chunk)
	return out
}

// DecodePlanes decompresses a chunk (the chunk bytes alone, without its
// length prefix) into its three 64-sample YUV666 planes, with chroma
// already demosaiced back up to full block resolution. This is the
// block-sink capability the decoder's several output-shape methods
// (allocated buffer, caller-owned buffer, per-pixel callback) all share:
// each one gets the same three planes and differs only in what it does
// with the resulting RGB pixels.
func DecodePlanes(chunk []byte) (y, u, v [64]byte, err error) {
	payload, err := chunkcodec.Decompress(chunk)
	if err != nil {
		return y, u, v, err
	}

	copy(y[:], payload[0:64])

	var um, vm [16]byte
	copy(um[:], payload[64:80])
	copy(vm[:], payload[80:96])
	u = mosaic.Demosaic(&um)
	v = mosaic.Demosaic(&vm)

	return y, u, v, nil
}

// DecodeBlock decompresses a chunk (the chunk bytes alone, without its
// length prefix) and writes the resulting RGB pixels into out, which
// holds the full output image's row-major RGB buffer with the given byte
// stride. Only the in-bounds w x h region of the 8x8 block (w, h <= Size)
// is written, so that a future edge-padded format variant can reuse this
// function for partial blocks at the image's right/bottom edge; the
// current aligned-geometry format always calls this with w = h = Size.
func DecodeBlock(chunk []byte, out []byte, stride, x0, y0, w, h int) error {
	y, umos, vmos, err := DecodePlanes(chunk)
	if err != nil {
		return err
	}

	for dy := 0; dy < h; dy++ {
		row := (y0+dy)*stride + x0*3
		for dx := 0; dx < w; dx++ {
			idx := dy*Size + dx
			r, g, b := colorspace.YUV666ToRGB(y[idx], umos[idx], vmos[idx])
			off := row + dx*3
			out[off], out[off+1], out[off+2] = r, g, b
		}
	}
	return nil
}
