package storage

import (
	"context"
	"fmt"
	"sync"
)

type memoryProvider struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory creates an in-memory provider, mainly for tests.
func NewMemory() Provider {
	return &memoryProvider{blobs: make(map[string][]byte)}
}

func (p *memoryProvider) Name() string { return "memory" }

func (p *memoryProvider) Save(_ context.Context, filename string, data []byte) (string, error) {
	key := keyFor(filename)

	buf := make([]byte, len(data))
	copy(buf, data)

	p.mu.Lock()
	p.blobs[key] = buf
	p.mu.Unlock()
	return key, nil
}

func (p *memoryProvider) Read(_ context.Context, key string) ([]byte, error) {
	p.mu.RLock()
	data, ok := p.blobs[key]
	p.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: blob %s not found", key)
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}

func (p *memoryProvider) Delete(_ context.Context, key string) error {
	p.mu.Lock()
	delete(p.blobs, key)
	p.mu.Unlock()
	return nil
}
