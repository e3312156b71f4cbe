package chunkcodec

// compressL implements the LZ-style strategy: a greedy left-to-right scan
// that at each cursor position searches backward for the longest
// qualifying back-reference, falling back to a single literal byte when
// no match of length >= 3 exists.
func compressL(payload *[96]byte) []byte {
	data := payload[:]
	out := make([]byte, 0, UncompressedSize)

	pos := 0
	for pos < len(data) {
		length, slide := findMatch(data, pos)
		if length >= minMatchLen {
			out = append(out, opBackrefMin|byte(length-minMatchLen), byte(slide-1))
			pos += length
			continue
		}
		out = append(out, data[pos])
		pos++
	}
	return out
}

// findMatch searches the sliding window behind pos for the longest
// back-reference, returning (0, 0) if no match of length >= 3 exists. On
// a length tie the smaller slide is kept: slides are scanned in
// increasing order and only a strictly longer match replaces the best
// one found so far.
//
// The match check compares data[pos+j] against data[pos-slide+j]
// directly against the source bytes (not a simulated output buffer):
// since data already holds every byte mPic wants the decoder to
// reproduce, and a decoder's self-referential copy reconstructs
// output[i] = output[i-slide] byte by byte, output[i] equals data[i] by
// induction for every i < pos+length as long as it does for i < pos —
// so comparing straight against data is equivalent to comparing against
// the decoder's future output.
func findMatch(data []byte, pos int) (length, slide int) {
	slideLimit := pos
	if slideLimit > maxSlide {
		slideLimit = maxSlide
	}

	lenLimit := len(data) - pos
	if lenLimit > maxMatchLen {
		lenLimit = maxMatchLen
	}
	if lenLimit < minMatchLen {
		return 0, 0
	}

	bestLen, bestSlide := 0, 0
	for s := 1; s <= slideLimit; s++ {
		l := 0
		for l < lenLimit && data[pos+l] == data[pos-s+l] {
			l++
		}
		if l > bestLen {
			bestLen, bestSlide = l, s
		}
	}
	if bestLen < minMatchLen {
		return 0, 0
	}
	return bestLen, bestSlide
}

// decompressL reverses compressL. Decode fails unless the reconstructed
// payload is exactly 96 bytes at the end of the chunk.
func decompressL(chunk []byte) ([96]byte, error) {
	var zero, out [96]byte
	n := 0

	i := 0
	for i < len(chunk) {
		op := chunk[i]
		switch {
		case op <= opLiteralMax:
			if n >= UncompressedSize {
				return zero, ErrInvalidData
			}
			out[n] = op
			n++
			i++

		case op <= opBackrefMax:
			if i+1 >= len(chunk) {
				return zero, ErrInvalidData
			}
			length := int(op&0x3f) + minMatchLen
			slide := int(chunk[i+1]&0x7f) + 1

			if slide > n || n+length > UncompressedSize {
				return zero, ErrInvalidData
			}
			for k := 0; k < length; k++ {
				out[n] = out[n-slide]
				n++
			}
			i += 2

		default:
			return zero, ErrInvalidData
		}
	}

	if n != UncompressedSize {
		return zero, ErrInvalidData
	}
	return out, nil
}
