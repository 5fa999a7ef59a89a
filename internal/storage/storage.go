package storage

import (
	"context"
	"errors"
)

// Object is a fetched object with the metadata the caller needs.
type Object struct {
	Key         string
	ContentType string
	Size        int64
	Body        []byte
}

// ObjectStore fetches objects from an S3-compatible bucket.
type ObjectStore interface {
	// GetObject downloads key, refusing objects larger than maxBytes.
	GetObject(ctx context.Context, key string, maxBytes int64) (*Object, error)
}

// Error constants for storage layer
var (
	ErrObjectNotFound = errors.New("object not found in storage")
	ErrObjectTooLarge = errors.New("object exceeds the size limit")
)
