package embedding

import (
	"fmt"
	"sync"
)

// Provider owns the one-time initialization of a shared Encoder. The
// capability may be exercised from multiple goroutines; the mutex ensures
// two concurrent first-uses cannot race to initialize it twice or observe a
// partially-built encoder. A failed initialization is not cached, so a later
// call can succeed once the backing server comes up.
type Provider struct {
	mu      sync.Mutex
	encoder Encoder
	factory func() (Encoder, error)
}

// NewProvider creates a provider that builds its encoder on first use
func NewProvider(factory func() (Encoder, error)) *Provider {
	return &Provider{factory: factory}
}

// NewStaticProvider wraps an already-built encoder, used by tests to
// substitute a deterministic fake
func NewStaticProvider(encoder Encoder) *Provider {
	return &Provider{encoder: encoder}
}

// Get returns the shared encoder, initializing it on first call
func (p *Provider) Get() (Encoder, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.encoder != nil {
		return p.encoder, nil
	}
	if p.factory == nil {
		return nil, fmt.Errorf("%w: no encoder configured", ErrUnavailable)
	}

	enc, err := p.factory()
	if err != nil {
		return nil, err
	}
	p.encoder = enc
	return enc, nil
}

// Loaded reports whether the encoder has been initialized
func (p *Provider) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.encoder != nil
}
