package port

// Cache is a minimal key-value store used for bounded bridge state.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Len() int
}
