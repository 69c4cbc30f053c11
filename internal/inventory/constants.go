package inventory

import "time"

// CacheSchemaVersion is bumped when the cached snapshot layout changes so old
// entries are dropped on read.
const CacheSchemaVersion = "1"

// Cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 5 * time.Minute
)

// Log Messages
const (
	LogMsgPayloadDegraded   = "Inventory payload decoded with degraded fields"
	LogMsgPayloadStructural = "Inventory payload rejected"
	LogMsgSnapshotSaved     = "Item snapshot saved"
	LogMsgSnapshotDeleted   = "Item snapshot deleted"
	LogMsgUnknownEgg        = "Owned egg missing from catalog"
)

// Error Messages
const (
	ErrMsgSaveSnapshotFailed   = "failed to save snapshot for %s: %w"
	ErrMsgGetSnapshotFailed    = "failed to get snapshot for %s: %w"
	ErrMsgDeleteSnapshotFailed = "failed to delete snapshot for %s: %w"
)
