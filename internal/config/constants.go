package config

const (
	// Configuration file paths
	ConfigPathCatalog       = "configs/catalog/eggs.json"
	ConfigPathCatalogSchema = "configs/schemas/catalog.schema.json"
	ConfigPathCatalogDir    = "data/catalog"
)

// Defaults
const (
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "habit-inventory"
	DefaultVersion           = "dev"
	DefaultDBMaxConns        = 10
	DefaultSnapshotCacheSize = 1024
	DefaultSnapshotCacheTTL  = "5m"
	DefaultMaxPayloadBytes   = 1 << 20
)
