package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates no normaliser handles a raw document's MIME type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrUnknownSetting indicates a settings key that artgraph does not recognise.
	ErrUnknownSetting = errors.New("unknown setting")

	// Connector Errors.

	// ErrAuthRequired indicates the API rejected or is missing its key.
	ErrAuthRequired = errors.New("authentication required")

	// ErrConnectorValidation indicates connector validation failed.
	// The settings are incomplete or malformed.
	ErrConnectorValidation = errors.New("connector validation failed")

	// ErrConnectorClosed indicates the connector has been closed.
	ErrConnectorClosed = errors.New("connector closed")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
