package config

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./bookshelf.db"

	// DevSecretKey is the fallback signing secret used when SECRET_KEY is unset.
	// It exists so the server starts in local development; every token signed
	// with it is forgeable, so it must never reach production.
	DevSecretKey = "dev-secret-change-me"
)
