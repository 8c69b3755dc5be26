package ir

import "errors"

var (
	ErrType       = errors.New("type mismatch")
	ErrMissingKey = errors.New("missing key")
	ErrConvert    = errors.New("unconvertible value")
)
