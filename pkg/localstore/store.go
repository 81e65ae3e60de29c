// Package localstore provides the durable key/value store backing session
// hints and the frequent-route list. Values are plain strings; callers that
// need structure store JSON.
package localstore

import "errors"

var (
	// ErrKeyNotFound is returned when the requested key has never been set
	// or has been deleted.
	ErrKeyNotFound = errors.New("key not found")
	// ErrKeyEmpty is returned when the caller passes an empty key.
	ErrKeyEmpty = errors.New("key is empty")
)

// Store is a durable string key/value store.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
