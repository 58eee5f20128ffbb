package ggif

import (
	"fmt"
	"sort"
	"sync"
)

// EncoderFactory is a function that creates a new encoder instance.
// Factories are registered via Register() and called by NewEncoder().
type EncoderFactory func() Encoder

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	encoders   = make(map[string]EncoderFactory)
)

// Register registers an encoder factory under the given format name.
// The name doubles as the file extension [Recorder.Save] dispatches on.
// This function is typically called from init() in encoder packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    ggif.Register("apng", func() ggif.Encoder {
//	        return NewAPNGEncoder()
//	    })
//	}
//
// Register panics if:
//   - factory is nil
//   - an encoder with the same name is already registered
//
// This ensures that duplicate registrations are caught early during
// program initialization rather than silently overwriting encoders.
func Register(name string, factory EncoderFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("ggif: Register factory is nil")
	}
	if _, dup := encoders[name]; dup {
		panic("ggif: Register called twice for " + name)
	}
	encoders[name] = factory
}

// Unregister removes an encoder from the registry.
// This is primarily useful for testing to clean up between tests.
// If the encoder is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(encoders, name)
}

// NewEncoder creates a new encoder instance by format name.
// The name must match a previously registered encoder; "gif" is always
// available.
//
// Returns an error if the encoder is not registered.
// The error message includes a hint about forgotten imports.
func NewEncoder(name string) (Encoder, error) {
	registryMu.RLock()
	factory, ok := encoders[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("ggif: unknown encoder %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Encoders returns a sorted list of registered encoder names.
// The list is sorted alphabetically for consistent output.
func Encoders() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if an encoder with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := encoders[name]
	return ok
}
