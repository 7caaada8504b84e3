package overlay

import "sync"

var (
	defaultMu  sync.Mutex
	defaultReg *Registry
)

// Default returns the process-wide registry, creating it on first use.
// Isolated registries from New are unaffected by it.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultReg == nil {
		defaultReg = New()
	}
	return defaultReg
}

// ShutdownDefault closes every overlay in the default registry and releases it.
// The next Default call builds a fresh registry.
func ShutdownDefault() {
	defaultMu.Lock()
	reg := defaultReg
	defaultReg = nil
	defaultMu.Unlock()

	if reg != nil {
		reg.RemoveAll()
	}
}
