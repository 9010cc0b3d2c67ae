package domain

import "errors"

var (
	// ErrDimensionMismatch reports a vector whose length disagrees with the
	// store's fixed dimension, or mismatched texts/vectors batch lengths.
	// This is a programmer error and always surfaces to the caller.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrNoIndex is the sentinel returned when no vector index could be
	// built for a corpus (empty text, or every chunk failed to embed).
	// Callers fall back to raw-text context instead of failing.
	ErrNoIndex = errors.New("no index available for corpus")

	// ErrEmbedding wraps embedding provider failures.
	ErrEmbedding = errors.New("embedding failed")

	// ErrGeneration wraps completion provider failures.
	ErrGeneration = errors.New("generation failed")
)
