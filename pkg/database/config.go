// Package database opens the relational store behind the repositories.
package database

import "time"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the database configuration
type Config struct {
	// Driver selects the dialect: "postgres" or "sqlite"
	Driver string

	// Host specifies the PostgreSQL server host
	Host string
	// Port specifies the PostgreSQL server port
	Port int
	// User specifies the database user
	User string
	// Password specifies the database password
	Password string
	// DBName specifies the database name
	DBName string
	// Schema specifies the search path schema
	Schema string
	// SSLMode specifies the SSL mode for the PostgreSQL connection
	SSLMode string
	// ConnectTimeout specifies the connection timeout in seconds
	ConnectTimeout int

	// SQLitePath is the database file, or ":memory:"
	SQLitePath string

	// MaxIdleConns specifies the maximum number of idle connections in the pool
	MaxIdleConns int
	// MaxOpenConns specifies the maximum number of open connections to the database
	MaxOpenConns int
	// ConnMaxIdleTime specifies how long a connection may stay idle
	ConnMaxIdleTime time.Duration
	// ConnMaxLifetime specifies how long a connection may be reused
	ConnMaxLifetime time.Duration

	// Debug logs every SQL statement
	Debug bool
}
