// Package wavcodec decodes RIFF/WAVE PCM audio into the flat sample
// sequence the carrier codec embeds into, and writes the mutated samples
// back into a byte-identical container.
//
// Sample ordering contract: one sample per 16-bit PCM value in data-chunk
// order (frames interleave channels exactly as stored). Everything outside
// the data chunk is preserved verbatim.
package wavcodec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"stegovault/pkg/carrier"
)

const (
	riffHeaderSize  = 12
	chunkHeaderSize = 8
	pcmFormat       = 1
)

// WAVCodec implements the carrier.Codec interface for uncompressed 16-bit
// PCM WAVE files.
type WAVCodec struct {
	carrier.BaseCodec
}

// NewWAVCodec creates a new WAV carrier codec.
func NewWAVCodec() *WAVCodec {
	return &WAVCodec{
		BaseCodec: carrier.NewBaseCodec("WAV LSB carrier", carrier.KindAudio, []string{"wav"}),
	}
}

// WAVMedium is a decoded WAV carrier. The original file bytes are retained
// so Encode reproduces the container exactly, mutated samples aside.
type WAVMedium struct {
	raw      []byte
	dataOff  int
	dataLen  int
	channels int
	rate     int
	samples  []int32
}

// Kind returns carrier.KindAudio.
func (m *WAVMedium) Kind() carrier.Kind { return carrier.KindAudio }

// Format returns "wav".
func (m *WAVMedium) Format() string { return "wav" }

// Samples returns one int32 per 16-bit PCM value, in data-chunk order.
// Mutations are visible to Encode.
func (m *WAVMedium) Samples() []int32 { return m.samples }

// Channels returns the channel count from the fmt chunk.
func (m *WAVMedium) Channels() int { return m.channels }

// SampleRate returns the sample rate from the fmt chunk.
func (m *WAVMedium) SampleRate() int { return m.rate }

// Decode parses a canonical RIFF/WAVE file. Only uncompressed 16-bit PCM is
// accepted; anything else is an unsupported format.
func (c *WAVCodec) Decode(r io.Reader) (carrier.Medium, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV data: %w", err)
	}

	if len(raw) < riffHeaderSize ||
		!bytes.Equal(raw[0:4], []byte("RIFF")) ||
		!bytes.Equal(raw[8:12], []byte("WAVE")) {
		return nil, fmt.Errorf("%w: not a RIFF/WAVE file", carrier.ErrUnsupportedFormat)
	}

	var (
		audioFormat   uint16
		channels      uint16
		rate          uint32
		bitsPerSample uint16
		haveFmt       bool
		dataOff       = -1
		dataLen       int
	)

	// Walk the chunk list. Chunks are word aligned; a chunk with an odd
	// size is followed by one pad byte.
	pos := riffHeaderSize
	for pos+chunkHeaderSize <= len(raw) {
		id := string(raw[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(raw[pos+4 : pos+8]))
		body := pos + chunkHeaderSize
		if body+size > len(raw) {
			return nil, fmt.Errorf("%w: truncated %q chunk", carrier.ErrUnsupportedFormat, id)
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("%w: short fmt chunk", carrier.ErrUnsupportedFormat)
			}
			audioFormat = binary.LittleEndian.Uint16(raw[body : body+2])
			channels = binary.LittleEndian.Uint16(raw[body+2 : body+4])
			rate = binary.LittleEndian.Uint32(raw[body+4 : body+8])
			bitsPerSample = binary.LittleEndian.Uint16(raw[body+14 : body+16])
			haveFmt = true
		case "data":
			dataOff = body
			dataLen = size
		}

		pos = body + size
		if size%2 == 1 {
			pos++
		}
	}

	if !haveFmt || dataOff < 0 {
		return nil, fmt.Errorf("%w: missing fmt or data chunk", carrier.ErrUnsupportedFormat)
	}
	if audioFormat != pcmFormat || bitsPerSample != 16 {
		return nil, fmt.Errorf("%w: need uncompressed 16-bit PCM, got format %d with %d bits per sample",
			carrier.ErrUnsupportedFormat, audioFormat, bitsPerSample)
	}

	samples := make([]int32, dataLen/2)
	for i := range samples {
		off := dataOff + i*2
		samples[i] = int32(int16(binary.LittleEndian.Uint16(raw[off : off+2])))
	}

	return &WAVMedium{
		raw:      raw,
		dataOff:  dataOff,
		dataLen:  dataLen,
		channels: int(channels),
		rate:     int(rate),
		samples:  samples,
	}, nil
}

// Encode writes the medium back as a WAV file identical to the original
// except for the PCM data.
func (c *WAVCodec) Encode(w io.Writer, m carrier.Medium) error {
	wm, ok := m.(*WAVMedium)
	if !ok {
		return fmt.Errorf("WAV codec cannot encode %s medium", m.Kind())
	}

	out := make([]byte, len(wm.raw))
	copy(out, wm.raw)
	for i, s := range wm.samples {
		off := wm.dataOff + i*2
		binary.LittleEndian.PutUint16(out[off:off+2], uint16(int16(s)))
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	return nil
}
