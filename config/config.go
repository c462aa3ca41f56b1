// Package config handles application configuration loading and management
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g.
// CALLCENTER_INFRASTRUCTURE_DATABASE_DRIVER=sqlite.
const EnvPrefix = "CALLCENTER"

// Config holds the entire application configuration
type Config struct {
	// Application contains application-level settings
	Application ApplicationConfig `mapstructure:"application"`
	// Server contains HTTP server settings
	Server ServerConfig `mapstructure:"server"`
	// Logging controls the structured logger
	Logging LoggingConfig `mapstructure:"logging"`
	// Infrastructure contains infrastructure connection settings
	Infrastructure InfrastructureConfig `mapstructure:"infrastructure"`
	// Pagination bounds paged listings
	Pagination PaginationConfig `mapstructure:"pagination"`
	// CORS lists the origins allowed to call the API from a browser
	CORS CORSConfig `mapstructure:"cors"`
}

// ApplicationConfig holds the application-level configuration
type ApplicationConfig struct {
	// Name specifies the name of the application
	Name string `mapstructure:"name"`
	// Version specifies the version of the application
	Version string `mapstructure:"version"`
}

// ServerConfig holds the server configuration
type ServerConfig struct {
	// Port specifies the port number the server will listen on
	Port int `mapstructure:"port"`
	// ReadTimeout is the maximum duration for reading the entire request, in seconds
	ReadTimeout int `mapstructure:"read_timeout"`
	// WriteTimeout is the maximum duration before timing out writes of the response, in seconds
	WriteTimeout int `mapstructure:"write_timeout"`
	// ShutdownTimeout is how long shutdown waits for active connections, in seconds
	ShutdownTimeout int `mapstructure:"shutdown_timeout"`
}

// LoggingConfig holds the logger configuration
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format is json or text
	Format string `mapstructure:"format"`
}

// InfrastructureConfig holds the infrastructure configuration
type InfrastructureConfig struct {
	// Database contains the relational store settings
	Database DatabaseConfig `mapstructure:"database"`
	// Redis contains the entity cache settings
	Redis RedisConfig `mapstructure:"redis"`
	// Kafka contains the event publisher settings
	Kafka KafkaConfig `mapstructure:"kafka"`
}

// DatabaseConfig holds the relational store configuration
type DatabaseConfig struct {
	// Driver is postgres or sqlite
	Driver string `mapstructure:"driver"`
	// Postgres contains PostgreSQL-specific settings
	Postgres PostgresConfig `mapstructure:"postgres"`
	// SQLite contains SQLite-specific settings
	SQLite SQLiteConfig `mapstructure:"sqlite"`
	// MaxIdleConns specifies the maximum number of idle connections in the pool
	MaxIdleConns int `mapstructure:"max_idle_conns"`
	// MaxOpenConns specifies the maximum number of open connections to the database
	MaxOpenConns int `mapstructure:"max_open_conns"`
	// ConnMaxIdleTime is how long a connection may stay idle, in minutes
	ConnMaxIdleTime int `mapstructure:"conn_max_idle_time"`
	// ConnMaxLifetime is how long a connection may be reused, in minutes
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime"`
	// Debug logs every SQL statement
	Debug bool `mapstructure:"debug"`
	// IsUseMigrate runs schema migration when the server starts
	IsUseMigrate bool `mapstructure:"is_use_migrate"`
	// Seed inserts the sample data set when the server starts
	Seed bool `mapstructure:"seed"`
}

// PostgresConfig holds the PostgreSQL connection parameters
type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	DBName         string `mapstructure:"dbname"`
	Schema         string `mapstructure:"schema"`
	SSLMode        string `mapstructure:"sslmode"`
	ConnectTimeout int    `mapstructure:"connect_timeout"` // in seconds
}

// SQLiteConfig holds the SQLite connection parameters
type SQLiteConfig struct {
	// Path is the database file, or ":memory:"
	Path string `mapstructure:"path"`
}

// RedisConfig holds the Redis configuration
type RedisConfig struct {
	// Enabled turns the read-through entity cache on
	Enabled bool `mapstructure:"enabled"`
	// Addrs specifies the Redis server addresses
	Addrs []string `mapstructure:"addrs"`
	// Username specifies the Redis username
	Username string `mapstructure:"username"`
	// Password specifies the Redis password
	Password string `mapstructure:"password"`
	// DB specifies the Redis database number
	DB int `mapstructure:"db"`
	// PoolSize specifies the maximum number of socket connections
	PoolSize int `mapstructure:"pool_size"`
	// CacheTTL is how long a cached entity stays valid, in seconds
	CacheTTL int `mapstructure:"cache_ttl"`
}

// KafkaConfig holds the Kafka configuration
type KafkaConfig struct {
	// Enabled turns event publishing on
	Enabled bool `mapstructure:"enabled"`
	// Brokers specifies the Kafka broker addresses
	Brokers []string `mapstructure:"brokers"`
	// ClientID identifies the producer to the brokers
	ClientID string `mapstructure:"client_id"`
	// Topic receives every entity change event
	Topic string `mapstructure:"topic"`
}

// PaginationConfig holds paging limits
type PaginationConfig struct {
	// MaxPageSize caps the page size of paged listings. Zero means no cap.
	MaxPageSize int `mapstructure:"max_page_size"`
}

// CORSConfig holds the CORS configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// TTL returns the cache entry lifetime.
func (c RedisConfig) TTL() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// DefaultConfigPaths are searched, in order, for callcenter.yaml.
var DefaultConfigPaths = []string{".", "configs", "../configs", "../../configs"}

// LoadConfig loads the configuration from .env, callcenter.yaml and
// CALLCENTER_* environment variables, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(DefaultConfigPaths...)
}

// LoadConfigFrom is LoadConfig with an explicit list of config directories.
func LoadConfigFrom(paths ...string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("callcenter")
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		log.Println("Config file not found, using environment variables and defaults")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can override it on Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("application.name", "callcenter-service")
	v.SetDefault("application.version", "1.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("infrastructure.database.driver", "postgres")
	v.SetDefault("infrastructure.database.postgres.host", "localhost")
	v.SetDefault("infrastructure.database.postgres.port", 5432)
	// user and password have no usable default; the empty strings only make
	// the keys visible to AutomaticEnv
	v.SetDefault("infrastructure.database.postgres.user", "")
	v.SetDefault("infrastructure.database.postgres.password", "")
	v.SetDefault("infrastructure.database.postgres.dbname", "callcenter")
	v.SetDefault("infrastructure.database.postgres.schema", "public")
	v.SetDefault("infrastructure.database.postgres.sslmode", "disable")
	v.SetDefault("infrastructure.database.postgres.connect_timeout", 5)
	v.SetDefault("infrastructure.database.sqlite.path", "callcenter.db")
	v.SetDefault("infrastructure.database.max_idle_conns", 10)
	v.SetDefault("infrastructure.database.max_open_conns", 100)
	v.SetDefault("infrastructure.database.conn_max_idle_time", 5)
	v.SetDefault("infrastructure.database.conn_max_lifetime", 60)
	v.SetDefault("infrastructure.database.debug", false)
	v.SetDefault("infrastructure.database.is_use_migrate", true)
	v.SetDefault("infrastructure.database.seed", false)

	v.SetDefault("infrastructure.redis.enabled", false)
	v.SetDefault("infrastructure.redis.addrs", []string{"localhost:6379"})
	v.SetDefault("infrastructure.redis.username", "")
	v.SetDefault("infrastructure.redis.password", "")
	v.SetDefault("infrastructure.redis.db", 0)
	v.SetDefault("infrastructure.redis.pool_size", 10)
	v.SetDefault("infrastructure.redis.cache_ttl", 300)

	v.SetDefault("infrastructure.kafka.enabled", false)
	v.SetDefault("infrastructure.kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("infrastructure.kafka.client_id", "callcenter-service")
	v.SetDefault("infrastructure.kafka.topic", "callcenter.events")

	v.SetDefault("pagination.max_page_size", 0)
	v.SetDefault("cors.allowed_origins", []string{})
}

// Validate checks settings that have no safe default.
func (c *Config) Validate() error {
	db := c.Infrastructure.Database
	switch db.Driver {
	case "postgres":
		if db.Postgres.User == "" {
			return errors.New("database user is required")
		}
		if db.Postgres.Password == "" {
			return errors.New("database password is required")
		}
	case "sqlite":
		if db.SQLite.Path == "" {
			return errors.New("sqlite path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", db.Driver)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Pagination.MaxPageSize < 0 {
		return errors.New("pagination max page size must not be negative")
	}
	if c.Infrastructure.Redis.Enabled && len(c.Infrastructure.Redis.Addrs) == 0 {
		return errors.New("redis addresses are required when the cache is enabled")
	}
	if c.Infrastructure.Kafka.Enabled {
		if len(c.Infrastructure.Kafka.Brokers) == 0 {
			return errors.New("kafka brokers are required when events are enabled")
		}
		if c.Infrastructure.Kafka.Topic == "" {
			return errors.New("kafka topic is required when events are enabled")
		}
	}
	return nil
}
