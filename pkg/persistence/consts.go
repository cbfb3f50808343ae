package persistence

// Default paths used when the storage configuration leaves the path empty.
const (
	DefaultBookPath   = "./books.json"
	DefaultSQLitePath = "./books.db"
)

// Supported storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)
