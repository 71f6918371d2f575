// Package bitstream provides the bit-level framing shared by all carrier
// codecs: serializing a byte payload into a bit sequence, appending the
// end-of-message marker, and locating that marker again during extraction.
package bitstream

// Marker is the 16-bit end-of-message marker (bit pattern 1111111111111110)
// appended after the payload bits. Extraction stops at its first occurrence.
//
// The payload is not escaped, so a payload whose bit sequence happens to
// contain this pattern is silently truncated at that point. This is a known
// limitation of the format.
const Marker uint16 = 0xFFFE

// MarkerBits is the length of the end marker in bits.
const MarkerBits = 16

// Bits expands data into one element per bit, most significant bit of each
// byte first. Every element is 0 or 1.
func Bits(data []byte) []uint8 {
	bits := make([]uint8, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1)
		}
	}
	return bits
}

// Frame returns the bit sequence of data followed by the end marker.
func Frame(data []byte) []uint8 {
	bits := make([]uint8, 0, FrameBits(len(data)))
	bits = append(bits, Bits(data)...)
	for i := MarkerBits - 1; i >= 0; i-- {
		bits = append(bits, uint8((Marker>>uint(i))&1))
	}
	return bits
}

// FrameBits returns the number of bits Frame produces for an n-byte payload.
func FrameBits(n int) int {
	return n*8 + MarkerBits
}

// Pack groups bits into bytes, most significant bit first. An incomplete
// trailing group of fewer than 8 bits is dropped.
func Pack(bits []uint8) []byte {
	out := make([]byte, 0, len(bits)/8)
	for i := 0; i+8 <= len(bits); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | bits[i+j]
		}
		out = append(out, b)
	}
	return out
}

// FindMarker returns the index of the first occurrence of the end marker in
// bits, or -1 if the marker is absent. The search is bit-exact at every
// offset, matching the single linear scan extraction performs.
func FindMarker(bits []uint8) int {
	var window uint16
	for i, b := range bits {
		window = window<<1 | uint16(b)
		if i >= MarkerBits-1 && window == Marker {
			return i - (MarkerBits - 1)
		}
	}
	return -1
}
