package carrier

import "stegovault/pkg/bitstream"

// Embed serializes frame most-significant-bit first, appends the 16-bit end
// marker, and writes the resulting bit sequence into the LSBs of samples,
// one bit per sample starting at index 0. Samples beyond the frame are left
// untouched.
//
// If the frame does not fit, Embed returns a *CapacityError and samples are
// not modified at all.
func Embed(samples []int32, frame []byte) error {
	bits := bitstream.Frame(frame)
	if len(bits) > len(samples) {
		return &CapacityError{
			NeededBits:    len(bits),
			AvailableBits: len(samples),
		}
	}
	for i, bit := range bits {
		samples[i] = samples[i]&^1 | int32(bit)
	}
	return nil
}

// Extract scans the LSBs of samples from index 0 and returns the bytes
// preceding the first occurrence of the end marker. Bits are grouped into
// bytes most-significant-bit first; an incomplete trailing group is dropped.
//
// The second return value is false when no marker is present, which is a
// legitimate negative result (the carrier holds no hidden message), not an
// error. Extract is a pure function: it never mutates samples.
func Extract(samples []int32) ([]byte, bool) {
	bits := make([]uint8, len(samples))
	for i, s := range samples {
		bits[i] = uint8(s & 1)
	}
	end := bitstream.FindMarker(bits)
	if end < 0 {
		return nil, false
	}
	return bitstream.Pack(bits[:end]), true
}

// Capacity returns the number of payload bytes that fit in the carrier once
// the end marker is accounted for.
func Capacity(samples []int32) int {
	if len(samples) < bitstream.MarkerBits {
		return 0
	}
	return (len(samples) - bitstream.MarkerBits) / 8
}
