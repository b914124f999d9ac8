package utils

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// NewID mints a random identity for drafts, fields and slots.
func NewID() string {
	return uuid.New().String()
}

// NewSequenceIDs returns a deterministic generator: prefix-1, prefix-2, ...
func NewSequenceIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
