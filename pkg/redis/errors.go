package redis

import "errors"

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: invalid port")
	// ErrNil is returned by Get/GetDel when the key does not exist.
	ErrNil = errors.New("redis: key not found")
)
