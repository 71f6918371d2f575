package carrier

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stegovault/pkg/bitstream"
)

func TestEmbedExtractRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("a"),
		[]byte("hello, world"),
		{0x00, 0xFF, 0x7F, 0x80},
		make([]byte, 100), // all zeros
	}

	for _, p := range payloads {
		samples := make([]int32, 2000)
		require.NoError(t, Embed(samples, p))

		got, ok := Extract(samples)
		require.True(t, ok)
		assert.Equal(t, p, got)
	}
}

func TestEmbedHelloScenario(t *testing.T) {
	// "HELLO" is 40 payload bits; with the 16-bit marker exactly the first
	// 56 samples carry data and the rest stay zero.
	samples := make([]int32, 1000)
	require.NoError(t, Embed(samples, []byte("HELLO")))

	want := bitstream.Frame([]byte("HELLO"))
	require.Len(t, want, 56)
	for i, bit := range want {
		assert.EqualValues(t, bit, samples[i], "sample %d", i)
	}
	for i := 56; i < 1000; i++ {
		require.Zero(t, samples[i], "sample %d should be untouched", i)
	}

	got, ok := Extract(samples)
	require.True(t, ok)
	assert.Equal(t, []byte("HELLO"), got)
}

func TestEmbedPreservesUpperBits(t *testing.T) {
	samples := make([]int32, 200)
	for i := range samples {
		samples[i] = int32(i * 3)
	}
	orig := append([]int32(nil), samples...)

	require.NoError(t, Embed(samples, []byte("x")))

	for i := range samples {
		assert.Equal(t, orig[i]&^1, samples[i]&^1, "sample %d upper bits", i)
	}
}

func TestEmbedCapacityBoundary(t *testing.T) {
	payload := []byte("boundary")
	exact := bitstream.FrameBits(len(payload))

	// Exactly enough samples succeeds.
	samples := make([]int32, exact)
	require.NoError(t, Embed(samples, payload))
	got, ok := Extract(samples)
	require.True(t, ok)
	assert.Equal(t, payload, got)

	// One sample short fails with a CapacityError and leaves the carrier
	// completely unmodified.
	short := make([]int32, exact-1)
	for i := range short {
		short[i] = 42
	}
	orig := append([]int32(nil), short...)

	err := Embed(short, payload)
	var capErr *CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, exact, capErr.NeededBits)
	assert.Equal(t, exact-1, capErr.AvailableBits)
	assert.Equal(t, orig, short)
}

func TestExtractNoMessage(t *testing.T) {
	// Random LSBs: the odds of the 16-bit marker not appearing in a short
	// random sequence are not astronomical, so deterministically clear two
	// LSBs in every 16 so a run of fifteen ones cannot occur. A carrier
	// holding no frame must yield a clean negative, never an error.
	rng := rand.New(rand.NewSource(1))
	samples := make([]int32, 4096)
	for i := range samples {
		samples[i] = int32(rng.Intn(256))
		if i%16 == 15 {
			samples[i] &^= 1
		}
		if i%16 == 14 {
			samples[i] &^= 1
		}
	}

	got, ok := Extract(samples)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestExtractAllZeroCarrier(t *testing.T) {
	samples := make([]int32, 1000)
	_, ok := Extract(samples)
	assert.False(t, ok)
}

func TestExtractIsDeterministic(t *testing.T) {
	samples := make([]int32, 500)
	require.NoError(t, Embed(samples, []byte("same twice")))

	first, ok1 := Extract(samples)
	second, ok2 := Extract(samples)
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, 0, Capacity(make([]int32, 0)))
	assert.Equal(t, 0, Capacity(make([]int32, 15)))
	assert.Equal(t, 0, Capacity(make([]int32, 16)))
	assert.Equal(t, 1, Capacity(make([]int32, 24)))
	assert.Equal(t, 5, Capacity(make([]int32, 56)))
	assert.Equal(t, 123, Capacity(make([]int32, 1000)))
}
