package chunkcodec

// decompressR decodes the raw strategy: the 96 payload bytes are carried
// verbatim. The encoder never emits this strategy (see Compress); it is
// accepted on decode only, per the mPic format's decoder-accepts,
// encoder-rejects policy for strategy R.
func decompressR(chunk []byte) ([96]byte, error) {
	var out [96]byte
	if len(chunk) != UncompressedSize {
		return out, ErrInvalidData
	}
	copy(out[:], chunk)
	return out, nil
}
