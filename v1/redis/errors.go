package redis

import (
	"errors"

	"github.com/redis/go-redis/v9"
)

var (
	// Nil is returned by Get when the key does not exist.
	Nil = redis.Nil

	// ErrClosed is returned when the client is closed.
	ErrClosed = redis.ErrClosed
)

// IsNilError reports whether err means "key does not exist".
func IsNilError(err error) bool {
	return errors.Is(err, Nil)
}

// IsClosedError reports whether err is a "client is closed" error.
func IsClosedError(err error) bool {
	return errors.Is(err, ErrClosed)
}
