package cache

// ScopedKeyer wraps a Keyer with a prefix so that several namespaces can share
// one backend, for example a CLI user and an API server on the same Redis.
//
// Example usage:
//
//	serverKeyer := NewScopedKeyer(NewDefaultKeyer(), "serve:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SolutionKey generates a prefixed key for a best-known solution.
func (k *ScopedKeyer) SolutionKey(graphHash string) string {
	return k.prefix + k.inner.SolutionKey(graphHash)
}
