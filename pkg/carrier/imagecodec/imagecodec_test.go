package imagecodec

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stegovault/pkg/carrier"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 7),
				G: uint8(y * 13),
				B: uint8((x + y) * 3),
				A: 255,
			})
		}
	}
	return img
}

func TestDecodeSampleOrdering(t *testing.T) {
	// 2x1 image: samples must come out row-major, R,G,B per pixel.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 4, G: 5, B: 6, A: 255})

	codec := NewImageCodec()
	m, err := codec.Decode(bytes.NewReader(encodePNG(t, img)))
	require.NoError(t, err)

	assert.Equal(t, carrier.KindImage, m.Kind())
	assert.Equal(t, "png", m.Format())
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, m.Samples())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := NewImageCodec()

	m, err := codec.Decode(bytes.NewReader(encodePNG(t, testImage(17, 9))))
	require.NoError(t, err)
	orig := append([]int32(nil), m.Samples()...)

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, m))

	back, err := codec.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, orig, back.Samples())
}

func TestEmbedSurvivesReencode(t *testing.T) {
	codec := NewImageCodec()

	m, err := codec.Decode(bytes.NewReader(encodePNG(t, testImage(40, 40))))
	require.NoError(t, err)

	payload := []byte("stashed in pixels")
	require.NoError(t, carrier.Embed(m.Samples(), payload))

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, m))

	back, err := codec.Decode(&buf)
	require.NoError(t, err)

	got, ok := carrier.Extract(back.Samples())
	require.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestAlphaPreserved(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: uint8(100 + x + y*3)})
		}
	}

	codec := NewImageCodec()
	m, err := codec.Decode(bytes.NewReader(encodePNG(t, img)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, m))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			px := color.NRGBAModel.Convert(decoded.At(x, y)).(color.NRGBA)
			assert.Equal(t, uint8(100+x+y*3), px.A, "alpha at (%d,%d)", x, y)
		}
	}
}

func TestDecodeGarbageFails(t *testing.T) {
	codec := NewImageCodec()
	_, err := codec.Decode(bytes.NewReader([]byte("definitely not an image")))
	assert.Error(t, err)
}

func TestSupportedFormats(t *testing.T) {
	codec := NewImageCodec()
	assert.True(t, codec.CanDecode("png"))
	assert.True(t, codec.CanDecode("bmp"))
	assert.True(t, codec.CanDecode("jpeg"))
	assert.False(t, codec.CanDecode("wav"))
}
