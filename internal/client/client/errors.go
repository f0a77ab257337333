package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrInvalid      = errors.New("invalid request")
	// ErrSequencing means the staged changes do not follow the committed
	// file versions; refresh the index and restage.
	ErrSequencing = errors.New("sequencing violation")
)
