package mpic

import (
	"image"
	"image/color"
)

// RGBImage adapts a decoded mPic buffer to the standard image.Image
// interface: a thin Bounds/ColorModel/At wrapper directly over the
// decoder's own byte buffer rather than a copy into image.RGBA. Pix
// holds plain 8-bit RGB triples, since mPic pixels never exceed
// [0,255].
type RGBImage struct {
	// Pix holds the image's pixels in RGB order, 3 bytes per pixel,
	// row-major with no padding between rows.
	Pix []byte
	// Rect is the image's bounds, always starting at (0, 0).
	Rect image.Rectangle
}

// Bounds returns the domain for which At can return a color.
func (img *RGBImage) Bounds() image.Rectangle {
	return img.Rect
}

// ColorModel returns the image's color model, which is always RGBA
// (opaque) since mPic carries no alpha channel of its own.
func (img *RGBImage) ColorModel() color.Model {
	return color.RGBAModel
}

// At returns the fully-opaque color of the pixel at (x, y).
func (img *RGBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) {
		return color.RGBA{}
	}
	i := img.PixOffset(x, y)
	return color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 0xff}
}

// PixOffset returns the index of the first element of Pix for pixel
// (x, y).
func (img *RGBImage) PixOffset(x, y int) int {
	return y*img.Rect.Dx()*3 + x*3
}

// Image fully decodes the stream and returns it as a standard
// image.Image, for callers that want to hand mPic data to code built
// against the image package (encoders, resizers, image/draw) rather than
// consume the raw RGB buffer directly.
func (d *Decoder) Image() (image.Image, error) {
	pix, err := d.Decode()
	if err != nil {
		return nil, err
	}
	width, height := int(d.header.Width), int(d.header.Height)
	return &RGBImage{Pix: pix, Rect: image.Rect(0, 0, width, height)}, nil
}

// EncodeImage converts a standard image.Image to an mPic byte stream. Any
// image.Image implementation is accepted; pixels are read through the
// generic At method and converted to 8-bit RGB, so callers passing an
// *image.RGBA or *RGBImage pay an extra copy compared to calling Encode
// directly with an already-packed RGB buffer.
func EncodeImage(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidInput
	}

	rgb := make([]byte, width*height*3)
	stride := width * 3
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := y*stride + x*3
			rgb[off] = byte(r >> 8)
			rgb[off+1] = byte(g >> 8)
			rgb[off+2] = byte(b >> 8)
		}
	}

	return Encode(rgb, width, height)
}
