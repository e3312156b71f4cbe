// Package bitops provides the small saturating and bit-expanding integer
// helpers shared by mPic's color and chunk-codec layers: pure integer
// transforms with no allocation and no floating point, suitable for the
// decode hot path on memory-constrained targets.
package bitops

// Expand6 stretches a 6-bit value (held in the low 6 bits of v; high bits
// ignored) to a full 8-bit value by replicating its high bits into the new
// low bits: (v<<2) | (v>>4). This preserves 0 and 63 mapping to 0 and 255
// while keeping the mapping monotonic and smooth across the whole range.
func Expand6(v byte) byte {
	v &= 0x3f
	return (v << 2) | (v >> 4)
}

// Expand4 stretches a 4-bit value (held in the low 4 bits of v) to 8 bits
// by replicating the nibble: (v<<4) | v.
func Expand4(v byte) byte {
	v &= 0x0f
	return (v << 4) | v
}

// ExpandPlane6 expands every sample of a 6-bit plane into dst, one byte at
// a time. The loop is unrolled in batches of 8, since mPic's Y plane is
// always a multiple of 8 samples long (64 for a full block).
func ExpandPlane6(dst []byte, src []byte) {
	n := len(src)
	if len(dst) < n {
		panic("bitops: destination slice too small")
	}

	i := 0
	for ; i+8 <= n; i += 8 {
		dst[i] = Expand6(src[i])
		dst[i+1] = Expand6(src[i+1])
		dst[i+2] = Expand6(src[i+2])
		dst[i+3] = Expand6(src[i+3])
		dst[i+4] = Expand6(src[i+4])
		dst[i+5] = Expand6(src[i+5])
		dst[i+6] = Expand6(src[i+6])
		dst[i+7] = Expand6(src[i+7])
	}
	for ; i < n; i++ {
		dst[i] = Expand6(src[i])
	}
}

// Clamp8 clamps an int to the [0,255] range and truncates to a byte.
func Clamp8(x int32) byte {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return byte(x)
}
