package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgEmptyBody             = "Request body is empty"
	ErrMsgBodyTooLarge          = "Request body too large"

	ErrMsgDecodeFailed       = "Failed to decode payload"
	ErrMsgIngestFailed       = "Failed to store inventory"
	ErrMsgGetItemsFailed     = "Failed to get inventory"
	ErrMsgGetSummaryFailed   = "Failed to get inventory summary"
	ErrMsgDeleteItemsFailed  = "Failed to delete inventory"
	ErrMsgGetEggFailed       = "Failed to get egg"
	ErrMsgDatabaseConnection = "database connection failed"
)

// Success messages for API responses
const (
	MsgItemsDeletedSuccess = "Inventory deleted successfully"
)

// Health status values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)
