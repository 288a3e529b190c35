// Package constants holds identifiers shared across layers.
package constants

// Storage keys for the persisted blobs.
const (
	StorageKeyContacts = "guardian_contacts"
	StorageKeyProfile  = "guardian_profile"
	StorageKeyLogs     = "guardian_logs"
)

// Storage drivers.
const (
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
	StorageDriverRedis    = "redis"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
