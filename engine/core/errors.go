package core

import (
	"errors"
)

var (
	ErrSingularMatrix        = errors.New("matrix is singular and has no inverse")
	ErrIndexOutOfRange       = errors.New("component index out of range")
	ErrInvalidFallbackPolicy = errors.New("invalid fallback policy")
	ErrConfigClosed          = errors.New("config watcher already closed")
	ErrConfigStopped         = errors.New("config watcher stopped")
)
