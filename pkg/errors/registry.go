package errors

import (
	"fmt"
	"sync"
)

// registry holds all registered error codes for uniqueness checking.
var (
	registryMu sync.RWMutex
	registry   = make(map[int]*Errno)
)

// Register registers an Errno and panics on duplicate codes.
// Call it from package init so collisions surface at startup.
func Register(e *Errno) *Errno {
	registryMu.Lock()
	defer registryMu.Unlock()

	if existing, ok := registry[e.Code]; ok {
		panic(fmt.Sprintf("errors: duplicate error code %d (existing: %q, new: %q)",
			e.Code, existing.MessageEN, e.MessageEN))
	}
	registry[e.Code] = e
	return e
}

// Lookup returns the registered Errno for a code, or nil.
func Lookup(code int) *Errno {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[code]
}

// Codes returns all registered error codes.
func Codes() []int {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]int, 0, len(registry))
	for code := range registry {
		out = append(out, code)
	}
	return out
}
