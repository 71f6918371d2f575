// Package stego composes the envelope and carrier codecs into whole-file
// hide and reveal operations. Each operation is described by an explicit
// request struct; nothing is shared between calls except the codec registry
// and a per-path lock that serializes in-flight work on the same carrier.
package stego

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"stegovault/pkg/bitstream"
	"stegovault/pkg/carrier"
	"stegovault/pkg/carrier/imagecodec"
	"stegovault/pkg/carrier/wavcodec"
	"stegovault/pkg/envelope"
	"stegovault/pkg/filehandler"
	"stegovault/pkg/models"
)

// HideRequest describes one embed operation. It is treated as immutable.
type HideRequest struct {
	CarrierPath string
	OutputPath  string // empty: derived from the carrier path
	Message     string
	Password    string
	Encrypt     bool
}

// RevealRequest describes one extract operation.
type RevealRequest struct {
	CarrierPath string
	Password    string
	Encrypt     bool
}

// Engine runs hide/reveal operations against registered carrier codecs.
type Engine struct {
	registry  *carrier.Registry
	envelope  *envelope.Codec
	locks     pathLocks
	suffix    string
	outputDir string
}

// Option configures an Engine.
type Option func(*Engine)

// WithIterations sets the PBKDF2 iteration count for new envelopes.
func WithIterations(n int) Option {
	return func(e *Engine) { e.envelope = envelope.New(n) }
}

// WithOutputSuffix sets the suffix used for derived output paths.
func WithOutputSuffix(s string) Option {
	return func(e *Engine) { e.suffix = s }
}

// WithOutputDir routes derived output paths into dir instead of the
// carrier's directory. Explicit output paths are unaffected.
func WithOutputDir(dir string) Option {
	return func(e *Engine) { e.outputDir = dir }
}

// NewEngine creates an Engine with the image and WAV codecs registered.
func NewEngine(opts ...Option) *Engine {
	reg := carrier.NewRegistry()
	reg.Register(imagecodec.NewImageCodec())
	reg.Register(wavcodec.NewWAVCodec())

	e := &Engine{
		registry: reg,
		envelope: envelope.New(envelope.DefaultIterations),
		suffix:   "_stego",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry exposes the carrier codec registry, e.g. for format listings.
func (e *Engine) Registry() *carrier.Registry {
	return e.registry
}

// Hide seals req.Message into an envelope frame and embeds it in the
// carrier, writing the result to the output path. The destination is only
// written once the full output is assembled, so a failed or cancelled
// operation leaves no partial file behind.
func (e *Engine) Hide(ctx context.Context, req HideRequest) (*models.HideResult, error) {
	start := time.Now()

	unlock := e.locks.lock(req.CarrierPath)
	defer unlock()

	codec, medium, err := e.decodeCarrier(req.CarrierPath)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	frame, err := e.envelope.Seal(req.Message, req.Password, req.Encrypt)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	samples := medium.Samples()
	if err := carrier.Embed(samples, frame); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := codec.Encode(&buf, medium); err != nil {
		return nil, fmt.Errorf("failed to encode carrier: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outPath := req.OutputPath
	if outPath == "" {
		outPath = e.defaultOutputPath(req.CarrierPath, medium.Format())
	}
	if err := filehandler.SaveFile(buf.Bytes(), outPath); err != nil {
		return nil, err
	}

	return &models.HideResult{
		CarrierPath:  req.CarrierPath,
		OutputPath:   outPath,
		Format:       medium.Format(),
		Kind:         medium.Kind().String(),
		Encrypted:    req.Encrypt && req.Password != "",
		PayloadBytes: len(frame),
		FrameBits:    bitstream.FrameBits(len(frame)),
		CapacityBits: len(samples),
		Duration:     time.Since(start),
	}, nil
}

// Reveal extracts the embedded frame from the carrier and opens the
// envelope. A carrier with no end marker yields Found == false and no
// error.
func (e *Engine) Reveal(ctx context.Context, req RevealRequest) (*models.RevealResult, error) {
	start := time.Now()

	unlock := e.locks.lock(req.CarrierPath)
	defer unlock()

	_, medium, err := e.decodeCarrier(req.CarrierPath)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &models.RevealResult{
		CarrierPath: req.CarrierPath,
		Format:      medium.Format(),
		Kind:        medium.Kind().String(),
		Encrypted:   req.Encrypt && req.Password != "",
	}

	frame, ok := carrier.Extract(medium.Samples())
	if !ok {
		result.Duration = time.Since(start)
		return result, nil
	}

	message, err := e.envelope.Open(frame, req.Password, req.Encrypt)
	if err != nil {
		return nil, err
	}

	result.Found = true
	result.Message = message
	result.PayloadBytes = len(frame)
	result.Duration = time.Since(start)
	return result, nil
}

// Inspect reports the carrier's embedding capacity without modifying it.
func (e *Engine) Inspect(ctx context.Context, path string) (*models.CarrierInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, medium, err := e.decodeCarrier(path)
	if err != nil {
		return nil, err
	}

	samples := medium.Samples()
	info := &models.CarrierInfo{
		Path:          path,
		Format:        medium.Format(),
		Kind:          medium.Kind().String(),
		Samples:       len(samples),
		CapacityBytes: carrier.Capacity(samples),
		Details:       map[string]interface{}{},
	}

	switch m := medium.(type) {
	case *imagecodec.ImageMedium:
		w, h := m.Bounds()
		info.Details["width"] = w
		info.Details["height"] = h
	case *wavcodec.WAVMedium:
		info.Details["channels"] = m.Channels()
		info.Details["sample_rate"] = m.SampleRate()
	}

	return info, nil
}

func (e *Engine) decodeCarrier(path string) (carrier.Codec, carrier.Medium, error) {
	format, err := filehandler.DetectFormat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", carrier.ErrUnsupportedFormat, err)
	}

	codec, err := e.registry.CodecFor(format)
	if err != nil {
		return nil, nil, err
	}

	data, err := filehandler.ReadFileBytes(path)
	if err != nil {
		return nil, nil, err
	}

	medium, err := codec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}

	return codec, medium, nil
}

// defaultOutputPath derives the output path from the carrier name. The
// extension always reflects the format actually written, so a lossy carrier
// re-encoded as PNG gets a .png name.
func (e *Engine) defaultOutputPath(carrierPath, format string) string {
	ext := filepath.Ext(carrierPath)
	name := strings.TrimSuffix(filepath.Base(carrierPath), ext) + e.suffix + ext
	dir := e.outputDir
	if dir == "" {
		dir = filepath.Dir(carrierPath)
	}
	return filehandler.ReplaceExt(filepath.Join(dir, name), format)
}
