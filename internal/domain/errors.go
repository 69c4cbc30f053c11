package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Payload errors
	ErrMsgMalformedPayload = "payload is not a JSON object"
	ErrMsgUnknownItemType  = "unknown item type"

	// Catalog errors
	ErrMsgEggNotFound     = "egg not found"
	ErrMsgInvalidCatalog  = "invalid catalog"
	ErrMsgDuplicateEggKey = "duplicate egg key"

	// Snapshot errors
	ErrMsgSnapshotNotFound = "item snapshot not found"
	ErrMsgInvalidUserID    = "invalid user id"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Payload errors
	ErrMalformedPayload = errors.New(ErrMsgMalformedPayload)
	ErrUnknownItemType  = errors.New(ErrMsgUnknownItemType)

	// Catalog errors
	ErrEggNotFound     = errors.New(ErrMsgEggNotFound)
	ErrInvalidCatalog  = errors.New(ErrMsgInvalidCatalog)
	ErrDuplicateEggKey = errors.New(ErrMsgDuplicateEggKey)

	// Snapshot errors
	ErrSnapshotNotFound = errors.New(ErrMsgSnapshotNotFound)
	ErrInvalidUserID    = errors.New(ErrMsgInvalidUserID)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
