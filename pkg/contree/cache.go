package contree

// Cache is the get/has/set contract used to memoize resolver results.
// The core performs no locking of its own around a Cache; implementations
// shared between goroutines must provide their own consistency.
type Cache[V any] interface {
	// Has reports whether a value is stored under key.
	Has(key string) bool

	// Get returns the value stored under key and whether it was found.
	Get(key string) (V, bool)

	// Set stores value under key, replacing any previous value.
	Set(key string, value V)
}
