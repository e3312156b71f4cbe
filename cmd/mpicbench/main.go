// mpicbench compares mPic's encoded size against a couple of
// baselines on a set of input images: go-jpeg2000 (a comparably
// lossy, block-based codec) and raw DEFLATE over the unencoded pixel
// buffer (a naive entropy-coding floor with no image-aware transform
// at all). It never participates in the .mpic file format itself —
// purely a reporting tool.
//
// Usage:
//
//	mpicbench <image-file> [image-file ...]
package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"github.com/klauspost/compress/flate"
	jpeg2000 "github.com/mrjoshuak/go-jpeg2000"
	"github.com/mrjoshuak/mpic"
)

const iterations = 5

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: mpicbench <image-file> [image-file ...]")
		os.Exit(2)
	}

	fmt.Printf("%-24s | %-10s | %-10s | %-10s | %-10s\n", "file", "mpic", "jpeg2000", "flate", "raw")
	fmt.Println("-------------------------+------------+------------+------------+-----------")

	failed := false
	for _, path := range os.Args[1:] {
		if err := benchFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func benchFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	rawSize := width * height * 3

	mpicSize, mpicEncode, err := benchMPic(img)
	if err != nil {
		return fmt.Errorf("mpic encode: %w", err)
	}

	jp2Size, jp2Encode := benchJPEG2000(img)
	flateSize := benchFlate(img)

	fmt.Printf("%-24s | %-10d | %-10d | %-10d | %-10d\n", path, mpicSize, jp2Size, flateSize, rawSize)
	_ = mpicEncode
	_ = jp2Encode
	return nil
}

// benchMPic encodes img with mPic iterations times (for a stable
// average) and returns the encoded size and average encode latency.
// mPic requires dimensions that are multiples of 8; images that
// aren't are reported as a size-only comparison against a cropped
// region, since mpicbench is a reporting tool and not the codec's
// canonical entry point.
func benchMPic(img image.Image) (size int, avg time.Duration, err error) {
	bounds := img.Bounds()
	width := bounds.Dx() - bounds.Dx()%8
	height := bounds.Dy() - bounds.Dy()%8
	if width == 0 || height == 0 {
		return 0, 0, mpic.ErrInvalidInput
	}

	rgb := make([]byte, width*height*3)
	stride := width * 3
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := y*stride + x*3
			rgb[off], rgb[off+1], rgb[off+2] = byte(r>>8), byte(g>>8), byte(b>>8)
		}
	}

	start := time.Now()
	var blob []byte
	for i := 0; i < iterations; i++ {
		blob, err = mpic.Encode(rgb, width, height)
		if err != nil {
			return 0, 0, err
		}
	}
	return len(blob), time.Since(start) / iterations, nil
}

func benchJPEG2000(img image.Image) (size int, avg time.Duration) {
	opts := jpeg2000.DefaultOptions()

	var buf bytes.Buffer
	start := time.Now()
	for i := 0; i < iterations; i++ {
		buf.Reset()
		if err := jpeg2000.Encode(&buf, img, opts); err != nil {
			return 0, 0
		}
	}
	return buf.Len(), time.Since(start) / iterations
}

// benchFlate compresses the image's raw RGB pixels with DEFLATE, a
// floor comparison: no color-space transform, no block prediction,
// just general-purpose entropy coding over bytes that happen to be
// pixels.
func benchFlate(img image.Image) int {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	rgb := make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := (y*width + x) * 3
			rgb[off], rgb[off+1], rgb[off+2] = byte(r>>8), byte(g>>8), byte(b>>8)
		}
	}

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return 0
	}
	w.Write(rgb)
	w.Close()
	return buf.Len()
}
