package cmd

import "time"

const (
	StorageMemory   = "memory" // SQLite, kept in memory
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort string
	Storage  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SessionIdleTTL time.Duration
	SweepSchedule  string

	RateLimit float64
	RateBurst int

	SeedMenus bool
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return "host=" + c.DBHost +
		" port=" + c.DBPort +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" sslmode=" + c.DBSslMode
}
