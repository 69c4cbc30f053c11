package catalog

// ==================== Paths ====================

const (
	// SchemaPath is the JSON schema every catalog file must satisfy
	SchemaPath = "configs/schemas/catalog.schema.json"

	// FetchedFileName is the local name of a catalog fetched from a remote source
	FetchedFileName = "eggs.json"
)

// ==================== Error Messages ====================

const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgSchemaFailed       = "schema validation failed for %s: %w"
	ErrMsgConvertYAMLFailed  = "failed to convert YAML catalog: %w"
	ErrMsgDecodeEggsFailed   = "failed to decode catalog eggs: %w"
	ErrMsgFetchCatalogFailed = "failed to fetch catalog from %s: %w"
	ErrMsgCreateCatalogDir   = "failed to create catalog directory: %w"
	ErrMsgCatalogNil         = "catalog is nil"
	ErrMsgNoEggsDefined      = "no eggs defined"
	ErrFmtEggAtIndexEmpty    = "%w: egg at index %d has empty key"
	ErrFmtEggNegativeValue   = "%w: egg '%s' has negative value"
	ErrFmtEggUnknownItemType = "%w: egg '%s' has item type '%s'"
	ErrFmtDuplicateEggKey    = "%w: '%s'"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded  = "Egg catalog loaded"
	LogMsgCatalogFetched = "Egg catalog fetched"
	LogMsgLocalCatalog   = "Using local egg catalog"
)
