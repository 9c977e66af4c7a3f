package fetch

import "errors"

// Error definitions for the fetch view.
var (
	// ErrNoCollectionService indicates that no collection service was provided.
	ErrNoCollectionService = errors.New("collection service is required")
)
