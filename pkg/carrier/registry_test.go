package carrier

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCodec struct {
	BaseCodec
}

func (f *fakeCodec) Decode(io.Reader) (Medium, error) { return nil, nil }
func (f *fakeCodec) Encode(io.Writer, Medium) error   { return nil }

func TestRegistryCodecFor(t *testing.T) {
	reg := NewRegistry()
	c := &fakeCodec{BaseCodec: NewBaseCodec("fake", KindImage, []string{"png", "bmp"})}
	reg.Register(c)

	got, err := reg.CodecFor("png")
	require.NoError(t, err)
	assert.Equal(t, "fake", got.Name())
	assert.Equal(t, KindImage, got.Kind())
	assert.True(t, got.CanDecode("bmp"))
	assert.False(t, got.CanDecode("wav"))

	_, err = reg.CodecFor("wav")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRegistrySupportedFormats(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&fakeCodec{BaseCodec: NewBaseCodec("img", KindImage, []string{"png"})})
	reg.Register(&fakeCodec{BaseCodec: NewBaseCodec("snd", KindAudio, []string{"wav"})})

	assert.ElementsMatch(t, []string{"png", "wav"}, reg.SupportedFormats())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "image", KindImage.String())
	assert.Equal(t, "audio", KindAudio.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
