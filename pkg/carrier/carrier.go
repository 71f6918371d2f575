// Package carrier implements the LSB carrier codec: embedding a byte frame
// into the least significant bits of a flat sample sequence and extracting
// it back. Decoding carrier files into sample sequences is the job of the
// format codecs registered with this package's Registry; the embed/extract
// algorithms themselves never touch the filesystem.
package carrier

import (
	"errors"
	"fmt"
	"io"
)

// Kind identifies the class of carrier medium. It is resolved once during
// format detection and carried explicitly through the call chain.
type Kind int

const (
	KindUnknown Kind = iota
	KindImage
	KindAudio
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// ErrUnsupportedFormat is returned when no registered codec handles the
// carrier format.
var ErrUnsupportedFormat = errors.New("unsupported carrier format")

// CapacityError reports that a frame does not fit in the carrier. It is
// returned before any sample is mutated.
type CapacityError struct {
	NeededBits    int
	AvailableBits int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("payload needs %d bits but carrier has %d samples available",
		e.NeededBits, e.AvailableBits)
}

// Medium is a decoded carrier. Samples returns the flat sample sequence in
// the codec's documented order; mutations to the returned slice are visible
// to the codec's Encode.
type Medium interface {
	Kind() Kind
	Format() string
	Samples() []int32
}

// Codec decodes a carrier file format into a Medium and re-encodes a
// (possibly mutated) Medium back into the same container format. Decode and
// Encode must preserve sample ordering exactly; embedding and extraction
// both depend on identical ordering on both sides.
type Codec interface {
	// Name returns the name of the codec.
	Name() string

	// Kind returns the carrier kind this codec produces.
	Kind() Kind

	// CanDecode checks if this codec can handle the given format.
	CanDecode(format string) bool

	// SupportedFormats returns a list of file formats this codec supports.
	SupportedFormats() []string

	// Decode reads a carrier file into a Medium.
	Decode(r io.Reader) (Medium, error)

	// Encode writes the Medium back in its native container format.
	Encode(w io.Writer, m Medium) error
}

// BaseCodec provides common functionality for codecs.
type BaseCodec struct {
	name    string
	kind    Kind
	formats []string
}

// NewBaseCodec creates a new BaseCodec.
func NewBaseCodec(name string, kind Kind, formats []string) BaseCodec {
	return BaseCodec{
		name:    name,
		kind:    kind,
		formats: formats,
	}
}

// Name returns the codec name.
func (b *BaseCodec) Name() string {
	return b.name
}

// Kind returns the carrier kind.
func (b *BaseCodec) Kind() Kind {
	return b.kind
}

// SupportedFormats returns the supported formats.
func (b *BaseCodec) SupportedFormats() []string {
	return b.formats
}

// CanDecode checks if the codec supports the given format.
func (b *BaseCodec) CanDecode(format string) bool {
	for _, f := range b.formats {
		if f == format {
			return true
		}
	}
	return false
}
