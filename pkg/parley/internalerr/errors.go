package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrStoreUnavailable  = errors.New("store unavailable")
	ErrFileNotAccessible = errors.New("file not accessible")
	ErrInvalidEncoding   = errors.New("input is not valid UTF-8")
	ErrCapability        = errors.New("upstream capability failure")
	ErrOutputUnwritable  = errors.New("output path unwritable")
)
