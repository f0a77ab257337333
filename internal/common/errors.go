package common

import (
	"errors"
	"fmt"
)

// Callers should use errors.Is to match these values.
var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal        = errors.New("internal error")
	ErrorUnauthorized    = errors.New("unauthorized")
	ErrorInvalidArgument = errors.New("invalid argument")
	ErrVersionConflict   = errors.New("version conflict")

	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Sync protocol errors.
	ErrLockHeld         = errors.New("lock already held")
	ErrDuplicateStaging = errors.New("upload already staged")
	ErrSequencing       = errors.New("file version sequencing violation")
	ErrConsistency      = errors.New("consistency check failed")
)

// VersionStaleError reports the master version actually stored when a caller
// asserted a different one. It matches ErrVersionConflict with errors.Is.
type VersionStaleError struct {
	Current int64
}

func (e *VersionStaleError) Error() string {
	return fmt.Sprintf("master version is stale, current is %d", e.Current)
}

func (e *VersionStaleError) Unwrap() error {
	return ErrVersionConflict
}
