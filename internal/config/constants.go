package config

const (
	// DefaultDatabasePath is the default path for the local sqlite database
	// used when no Postgres credentials are configured.
	DefaultDatabasePath = "./openshelf.db"

	// DefaultOpenLibraryBaseURL is the catalog service queried for ISBN lookups.
	DefaultOpenLibraryBaseURL = "https://openlibrary.org"
)
