// Package errors defines all exported error sentinels for the jumphash
// library.
//
// This is the single source of truth for error values. Callers should
// compare against these sentinels with errors.Is rather than matching
// message strings.
package errors

import "errors"

// Input validation errors
var (
	ErrInvalidBucketCount = errors.New("jumphash: bucket count must be >= 1")
	ErrNilKeyFunc         = errors.New("jumphash: key function is nil")
)

// Chooser errors
var (
	ErrNoBuckets       = errors.New("jumphash: bucket set is empty")
	ErrTooManyReplicas = errors.New("jumphash: replica count exceeds bucket count")
)
