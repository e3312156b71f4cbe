// Package colorspace converts between 24-bit RGB pixels and the 6-bit-per
// channel YUV666 representation mPic stores on disk.
//
// The conversion uses fixed-point BT.601 integer coefficients at 8-bit
// precision rather than floating point, since mPic targets integer-only
// embedded decoders.
package colorspace

import "github.com/mrjoshuak/mpic/bitops"

// RGBToYUV666 converts one 8-bit RGB pixel to 6-bit-per-channel YUV.
// Each return value carries its 6-bit sample in the low bits; the high 2
// bits are always zero.
func RGBToYUV666(r, g, b byte) (y, u, v byte) {
	ri, gi, bi := int32(r), int32(g), int32(b)

	y8 := ((66*ri + 129*gi + 25*bi + 128) >> 8) + 16
	u8 := ((-38*ri - 74*gi + 112*bi + 128) >> 8) + 128
	v8 := ((112*ri - 94*gi - 18*bi + 128) >> 8) + 128

	return byte(y8>>2) & 0x3f, byte(u8>>2) & 0x3f, byte(v8>>2) & 0x3f
}

// YUV666ToRGB converts one 6-bit-per-channel YUV pixel back to 8-bit RGB.
// Input samples are expected in the low 6 bits; high bits are ignored.
func YUV666ToRGB(y, u, v byte) (r, g, b byte) {
	yy := int32(bitops.Expand6(y)) - 16
	uu := int32(bitops.Expand6(u)) - 128
	vv := int32(bitops.Expand6(v)) - 128

	r = bitops.Clamp8((298*yy + 409*vv + 128) >> 8)
	g = bitops.Clamp8((298*yy - 100*uu - 208*vv + 128) >> 8)
	b = bitops.Clamp8((298*yy + 516*uu + 128) >> 8)

	return r, g, b
}
