package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrNetwork    = errors.New("network error")
	ErrAuth       = errors.New("unauthorized")
)

// RateLimitError is returned when the platform answers 429.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

func (e *RateLimitError) Unwrap() error {
	return ErrNetwork
}
