// Package imagecodec decodes raster images into the flat sample sequence
// the carrier codec embeds into, and re-encodes the mutated samples into a
// lossless container.
//
// Sample ordering contract: pixels are visited row-major from the top-left
// corner, emitting three samples per pixel in R, G, B order. Alpha is never
// part of the sample sequence and is preserved verbatim. Any compatible
// decoder/encoder pair must use this exact ordering.
package imagecodec

import (
	"fmt"
	"image"
	"image/color"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"stegovault/pkg/carrier"
)

// ImageCodec implements the carrier.Codec interface for raster images.
type ImageCodec struct {
	carrier.BaseCodec
}

// NewImageCodec creates a new image carrier codec. JPEG and GIF are decode
// only: their containers are lossy or palette-bound, so stego output is
// written as PNG instead.
func NewImageCodec() *ImageCodec {
	formats := []string{"png", "bmp", "tiff", "jpeg", "gif"}
	return &ImageCodec{
		BaseCodec: carrier.NewBaseCodec("Image LSB carrier", carrier.KindImage, formats),
	}
}

// ImageMedium is a decoded image carrier.
type ImageMedium struct {
	format  string
	width   int
	height  int
	samples []int32
	alpha   []uint8
}

// Kind returns carrier.KindImage.
func (m *ImageMedium) Kind() carrier.Kind { return carrier.KindImage }

// Format returns the container format Encode will write. Lossy or
// palette-bound inputs report "png".
func (m *ImageMedium) Format() string { return m.format }

// Samples returns the flat R,G,B channel sequence. Mutations are visible to
// Encode.
func (m *ImageMedium) Samples() []int32 { return m.samples }

// Bounds returns the pixel dimensions of the carrier.
func (m *ImageMedium) Bounds() (width, height int) { return m.width, m.height }

// Decode reads an image into an ImageMedium.
func (c *ImageCodec) Decode(r io.Reader) (carrier.Medium, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if !c.CanDecode(format) {
		return nil, fmt.Errorf("%w: %s", carrier.ErrUnsupportedFormat, format)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	samples := make([]int32, 0, width*height*3)
	alpha := make([]uint8, 0, width*height)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// Non-premultiplied channels: a premultiplied read would not
			// survive the encode/decode round trip when alpha < 255.
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			samples = append(samples, int32(px.R), int32(px.G), int32(px.B))
			alpha = append(alpha, px.A)
		}
	}

	outFormat := format
	if format == "jpeg" || format == "gif" {
		outFormat = "png"
	}

	return &ImageMedium{
		format:  outFormat,
		width:   width,
		height:  height,
		samples: samples,
		alpha:   alpha,
	}, nil
}

// Encode writes the medium's samples back into its container format. Only
// lossless containers are written; anything else would destroy the LSBs.
func (c *ImageCodec) Encode(w io.Writer, m carrier.Medium) error {
	im, ok := m.(*ImageMedium)
	if !ok {
		return fmt.Errorf("image codec cannot encode %s medium", m.Kind())
	}

	img := image.NewNRGBA(image.Rect(0, 0, im.width, im.height))
	for i := 0; i < im.width*im.height; i++ {
		off := i * 4
		img.Pix[off+0] = uint8(im.samples[i*3+0])
		img.Pix[off+1] = uint8(im.samples[i*3+1])
		img.Pix[off+2] = uint8(im.samples[i*3+2])
		img.Pix[off+3] = im.alpha[i]
	}

	switch im.format {
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, nil)
	default:
		return png.Encode(w, img)
	}
}
