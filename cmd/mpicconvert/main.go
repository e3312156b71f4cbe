// mpicconvert converts image files to and from the mPic format.
//
// Usage:
//
//	mpicconvert [options] infile [outfile]
//
// The direction of conversion is chosen by file extension: an ".mpic"
// input decodes to the output format (guessed from outfile's
// extension, PNG by default); any other recognized input format
// (PNG, JPEG, GIF, WebP) encodes to ".mpic". outfile is optional: when
// omitted, it defaults to infile with its extension replaced by ".png"
// (decoding) or ".mpic" (encoding).
//
// Options:
//
//	-v           verbose output
//	-h, -help    show usage information
//	-version     show version information
//
// Exit codes:
//
//	0: success
//	1: format error (unrecognized/invalid image or mPic data)
//	2: I/O or usage error
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrjoshuak/mpic"
	"golang.org/x/image/webp"
)

const version = "1.0.0"

func main() {
	verbose := flag.Bool("v", false, "verbose output")
	showVersion := flag.Bool("version", false, "show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mpicconvert [options] infile [outfile]\n\n")
		fmt.Fprintf(os.Stderr, "Convert between mPic and common raster image formats.\n")
		fmt.Fprintf(os.Stderr, "Direction is chosen by file extension: decoding an .mpic\n")
		fmt.Fprintf(os.Stderr, "input, or encoding any other recognized input to .mpic.\n")
		fmt.Fprintf(os.Stderr, "outfile defaults to infile with its extension replaced by\n")
		fmt.Fprintf(os.Stderr, ".png or .mpic, as appropriate.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("mpicconvert version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}
	inFile := args[0]
	var outFile string
	if len(args) == 2 {
		outFile = args[1]
	}

	if err := convert(inFile, outFile, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", inFile, err)
		if ce, ok := err.(*convertError); ok && ce.ioError {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// convertError distinguishes I/O failures (exit 2) from format
// failures (exit 1): "file not found" versus "file invalid".
type convertError struct {
	cause   error
	ioError bool
}

func (e *convertError) Error() string { return e.cause.Error() }
func (e *convertError) Unwrap() error { return e.cause }

func ioErr(err error) error     { return &convertError{cause: err, ioError: true} }
func formatErr(err error) error { return &convertError{cause: err, ioError: false} }

func convert(inFile, outFile string, verbose bool) error {
	in, err := os.ReadFile(inFile)
	if err != nil {
		return ioErr(err)
	}

	isMPicInput := strings.EqualFold(filepath.Ext(inFile), ".mpic")
	if outFile == "" {
		if isMPicInput {
			outFile = withExtension(inFile, ".png")
		} else {
			outFile = withExtension(inFile, ".mpic")
		}
	}

	if isMPicInput {
		return decodeToImageFile(in, outFile, verbose)
	}
	return encodeToMPicFile(in, outFile, verbose)
}

// withExtension returns path with its extension (if any) replaced by ext,
// which must include the leading dot. Used to derive a default output
// name from the input name when the caller omits outfile.
func withExtension(path, ext string) string {
	trimmed := strings.TrimSuffix(path, filepath.Ext(path))
	return trimmed + ext
}

// decodeToImageFile decodes an mPic blob and writes it out in the format
// implied by outFile's extension (PNG unless outFile ends in .jpg/.jpeg).
func decodeToImageFile(blob []byte, outFile string, verbose bool) error {
	dec, err := mpic.NewDecoder(blob)
	if err != nil {
		return formatErr(err)
	}
	if verbose {
		info := dec.Info()
		fmt.Printf("decoding %dx%d mPic image\n", info.Width, info.Height)
	}

	img, err := dec.Image()
	if err != nil {
		return formatErr(err)
	}

	out, err := os.Create(outFile)
	if err != nil {
		return ioErr(err)
	}
	defer out.Close()

	switch strings.ToLower(filepath.Ext(outFile)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(out, img, &jpeg.Options{Quality: 92})
	default:
		err = png.Encode(out, img)
	}
	if err != nil {
		return ioErr(err)
	}
	return nil
}

// encodeToMPicFile decodes in with the standard library's image
// recognizer (falling back to WebP) and re-encodes it as mPic, writing
// the result to outFile.
func encodeToMPicFile(in []byte, outFile string, verbose bool) error {
	img, format, err := decodeAnyImage(in)
	if err != nil {
		return formatErr(err)
	}
	if verbose {
		b := img.Bounds()
		fmt.Printf("encoding %dx%d %s image\n", b.Dx(), b.Dy(), format)
	}

	blob, err := mpic.EncodeImage(img)
	if err != nil {
		return formatErr(err)
	}

	if err := os.WriteFile(outFile, blob, 0o644); err != nil {
		return ioErr(err)
	}
	return nil
}

// decodeAnyImage recognizes the formats registered with image.Decode
// (PNG, JPEG, GIF, and WebP, which the imported golang.org/x/image/webp
// package registers), and if that fails tries webp.Decode directly.
func decodeAnyImage(in []byte) (image.Image, string, error) {
	if img, format, err := image.Decode(bytes.NewReader(in)); err == nil {
		return img, format, nil
	}
	img, err := webp.Decode(bytes.NewReader(in))
	if err != nil {
		return nil, "", err
	}
	return img, "webp", nil
}
