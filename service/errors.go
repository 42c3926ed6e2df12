package service

import "errors"

// ErrInvalidInput is wrapped by every validation error returned to callers.
var ErrInvalidInput = errors.New("invalid input")
