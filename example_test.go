package mpic_test

import (
	"fmt"

	"github.com/mrjoshuak/mpic"
)

// Example_encodeDecode demonstrates a round trip through Encode and
// Decode.
func Example_encodeDecode() {
	const width, height = 16, 8
	rgb := make([]byte, width*height*3)
	for i := 0; i < width*height; i++ {
		rgb[i*3], rgb[i*3+1], rgb[i*3+2] = 200, 60, 10
	}

	blob, err := mpic.Encode(rgb, width, height)
	if err != nil {
		fmt.Println("encode error:", err)
		return
	}

	dec, err := mpic.NewDecoder(blob)
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}

	info := dec.Info()
	fmt.Printf("%dx%d, %d bytes encoded\n", info.Width, info.Height, len(blob))
	// Output: 16x8, 29 bytes encoded
}

// Example_decodeCallback demonstrates streaming pixels straight to a
// sink without allocating a full output image, the shape an embedded
// decoder writing to a display framebuffer would use.
func Example_decodeCallback() {
	const width, height = 8, 8
	rgb := make([]byte, width*height*3)
	for i := range rgb {
		rgb[i] = 128
	}

	blob, err := mpic.Encode(rgb, width, height)
	if err != nil {
		fmt.Println("encode error:", err)
		return
	}

	dec, err := mpic.NewDecoder(blob)
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}

	count := 0
	err = dec.DecodeCallback(func(x, y int, r, g, b byte) {
		count++
	})
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}
	fmt.Println(count, "pixels")
	// Output: 64 pixels
}
