package cache

// ScopedKeyer wraps a Keyer with a prefix so that several tenants can
// share one backend. The CLI and server scope keys by build version, so
// entries written by an older engine are never served.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.4.0:")
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

// LabelsKey generates a prefixed key for placement caching.
func (k *ScopedKeyer) LabelsKey(inputHash string, opts LabelKeyOpts) string {
	return k.prefix + k.inner.LabelsKey(inputHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(labelsKey string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(labelsKey, opts)
}
