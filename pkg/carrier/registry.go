package carrier

import "sync"

// Registry is a container for all available carrier codecs, keyed by format.
type Registry struct {
	codecs map[string]Codec
	mu     sync.RWMutex
}

// NewRegistry creates a new codec registry.
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
	}
}

// Register adds a codec to the registry for every format it supports. A
// later registration for the same format wins.
func (r *Registry) Register(c Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, format := range c.SupportedFormats() {
		r.codecs[format] = c
	}
}

// CodecFor returns the codec registered for the given format, or
// ErrUnsupportedFormat if none handles it.
func (r *Registry) CodecFor(format string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.codecs[format]
	if !ok {
		return nil, ErrUnsupportedFormat
	}
	return c, nil
}

// SupportedFormats returns a list of all registered formats.
func (r *Registry) SupportedFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var formats []string
	for format := range r.codecs {
		formats = append(formats, format)
	}

	return formats
}
