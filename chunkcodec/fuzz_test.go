package chunkcodec

import "testing"

// FuzzDecompress exercises Decompress with arbitrary byte streams; it
// must never panic, only return a payload or ErrInvalidData.
func FuzzDecompress(f *testing.F) {
	f.Add([]byte{})
	f.Add(make([]byte, 96))
	f.Add(make([]byte, 72))
	f.Add([]byte{0x40, 0x00, 0, 0, 0})
	f.Add([]byte{0x80, 0, 0, 0, 0})
	f.Add([]byte{0x7f, 0xff, 0, 0, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		payload, err := Decompress(data)
		if err != nil {
			return
		}
		// A successful decode must always be exactly 96 bytes and every
		// decompress strategy must agree it is a valid size.
		if !IsValidCompressedSize(len(data)) && len(data) != CompactedSize && len(data) != UncompressedSize {
			t.Fatalf("Decompress accepted invalid size %d", len(data))
		}
		_ = payload
	})
}

// FuzzCompressRoundTrip checks that any 96-byte, 6-bit-masked payload
// round-trips through Compress/Decompress.
func FuzzCompressRoundTrip(f *testing.F) {
	var zero, max [96]byte
	for i := range max {
		max[i] = 0x3f
	}
	f.Add(zero[:])
	f.Add(max[:])

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) != 96 {
			t.Skip()
		}
		var payload [96]byte
		for i, b := range data {
			payload[i] = b & 0x3f
		}
		chunk := Compress(&payload)
		got, err := Decompress(chunk)
		if err != nil {
			t.Fatalf("Decompress(Compress(payload)) failed: %v", err)
		}
		if got != payload {
			t.Fatalf("round-trip mismatch")
		}
	})
}
