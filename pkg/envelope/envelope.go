// Package envelope turns a text message into a byte frame suitable for
// bit-embedding and back, optionally under password-derived authenticated
// encryption (PBKDF2-HMAC-SHA256 + AES-256-GCM).
//
// Encrypted frame layout, all fields recoverable without external state:
//
//	[iterations uint32 BE][salt 16][nonce 12][ciphertext || GCM tag]
//
// The salt is random per call. Deriving it from a constant would make every
// password-derived key identical across files, so a fixed salt is rejected
// as a defect rather than supported for compatibility.
package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
)

const (
	keySize   = 32
	saltSize  = 16
	nonceSize = 12
	tagSize   = 16
	iterSize  = 4

	// MinIterations is the floor for the PBKDF2 iteration count. Envelopes
	// claiming fewer iterations are rejected to block downgrade attempts.
	MinIterations = 100000

	// DefaultIterations is the PBKDF2 iteration count used when the caller
	// does not configure one.
	DefaultIterations = 100000

	headerSize = iterSize + saltSize + nonceSize
)

// ErrAuthentication is returned when an encrypted frame cannot be opened.
// It deliberately does not distinguish a wrong password from corrupted or
// tampered data.
var ErrAuthentication = errors.New("decryption failed")

// Codec seals and opens message envelopes.
type Codec struct {
	iterations int
}

// New creates a Codec with the given PBKDF2 iteration count. Counts below
// MinIterations are raised to it.
func New(iterations int) *Codec {
	if iterations < MinIterations {
		iterations = MinIterations
	}
	return &Codec{iterations: iterations}
}

// Iterations returns the configured PBKDF2 iteration count.
func (c *Codec) Iterations() int {
	return c.iterations
}

// Seal converts message into a frame for embedding. With encryption off or
// an empty password the frame is the raw UTF-8 bytes of message. Otherwise
// a fresh random salt and nonce are generated and the message is sealed
// with AES-256-GCM under a key derived from password.
func (c *Codec) Seal(message, password string, encrypt bool) ([]byte, error) {
	if !encrypt || password == "" {
		return []byte(message), nil
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("salt generation failed: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("nonce generation failed: %w", err)
	}

	gcm, err := newGCM(password, salt, c.iterations)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, headerSize, headerSize+len(message)+tagSize)
	binary.BigEndian.PutUint32(frame[:iterSize], uint32(c.iterations))
	copy(frame[iterSize:], salt)
	copy(frame[iterSize+saltSize:], nonce)

	return gcm.Seal(frame, nonce, []byte(message), nil), nil
}

// Open inverts Seal. With encryption off the frame bytes are decoded as
// UTF-8; invalid UTF-8 falls back to a lossless single-byte decoding rather
// than failing. With encryption on the frame is parsed, the key re-derived,
// and the ciphertext verified; every parse or verification failure surfaces
// as ErrAuthentication.
func (c *Codec) Open(frame []byte, password string, encrypt bool) (string, error) {
	if !encrypt || password == "" {
		return decodeText(frame), nil
	}

	if len(frame) < headerSize+tagSize {
		return "", ErrAuthentication
	}

	iterations := int(binary.BigEndian.Uint32(frame[:iterSize]))
	if iterations < MinIterations {
		return "", ErrAuthentication
	}
	salt := frame[iterSize : iterSize+saltSize]
	nonce := frame[iterSize+saltSize : headerSize]
	ciphertext := frame[headerSize:]

	gcm, err := newGCM(password, salt, iterations)
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// Wrong password and corrupted ciphertext are indistinguishable by
		// construction; do not leak the underlying error.
		return "", ErrAuthentication
	}

	return string(plaintext), nil
}

func newGCM(password string, salt []byte, iterations int) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(password), salt, iterations, keySize, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cipher creation failed: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("GCM creation failed: %w", err)
	}

	return gcm, nil
}

// decodeText returns data as text, preserving every byte. Valid UTF-8 is
// returned as-is; anything else is decoded byte-per-rune (Latin-1 style) so
// no information is lost.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
