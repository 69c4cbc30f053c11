package postgres

// Error Messages
const (
	ErrMsgMarshalItems   = "failed to marshal items: %w"
	ErrMsgUnmarshalItems = "failed to unmarshal stored items: %w"
	ErrMsgSaveSnapshot   = "failed to save item snapshot"
	ErrMsgGetSnapshot    = "failed to get item snapshot"
	ErrMsgDeleteSnapshot = "failed to delete item snapshot"
)
