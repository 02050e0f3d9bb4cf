package cryptoreg

import (
	"sort"
	"sync"

	"golang.org/x/crypto/sha3"
)

// HashFunc is a one-way digest used for master-key authentication and key
// derivation.
type HashFunc func(data []byte) []byte

// HashRegistry is a process-wide name -> HashFunc table, same shape as
// CipherRegistry.
type HashRegistry struct {
	mu        sync.RWMutex
	functions map[string]HashFunc
}

// NewHashRegistry returns an empty registry with no bindings.
func NewHashRegistry() *HashRegistry {
	return &HashRegistry{functions: make(map[string]HashFunc)}
}

// DefaultHashRegistry returns a registry pre-populated with the required
// "sha3-256" binding.
func DefaultHashRegistry() *HashRegistry {
	r := NewHashRegistry()
	r.Register("sha3-256", sha3256)
	return r
}

// Register adds or replaces the binding for name.
func (r *HashRegistry) Register(name string, fn HashFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.functions[name] = fn
}

// GetFunction returns the hash function registered under name.
func (r *HashRegistry) GetFunction(name string) (HashFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.functions[name]
	if !ok {
		return nil, ErrUnknownAlgorithm
	}
	return fn, nil
}

// Names returns the registered hash names in sorted order.
func (r *HashRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.functions))
	for name := range r.functions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func sha3256(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}
