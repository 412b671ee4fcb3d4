package cache

import "errors"

var (
	// ErrNotFound for cache fetches that return a nil value.
	ErrNotFound = errors.New("not found in cache")
	// ErrInvalidCacheSize is returned when a bounded cache is created with a non positive size.
	ErrInvalidCacheSize = errors.New("cache size must be positive")
)
