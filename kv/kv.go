// Package kv provides the minimal key-value capability the till persists
// through: string keys to raw JSON values. The store is private to one
// till session; there is no cross-session locking.
package kv

// Store is the durable key-value capability. A missing key is reported
// through the boolean, never through an error.
type Store interface {
	// Get returns the value stored under key, and whether it exists.
	Get(key string) (string, bool)
	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error
	// Remove deletes the key. Removing a missing key is a no-op.
	Remove(key string) error
	// Keys lists the stored keys, in no particular order.
	Keys() ([]string, error)
}
