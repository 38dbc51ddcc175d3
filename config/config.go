package config

import (
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents an app config.
type Config struct {
	Server     Server
	PostgreSQL PostgreSQL
	Logger     Logger
}

// Server represents an HTTP server configuration.
type Server struct {
	Address string `env:"CATALOG_SERVER_ADDRESS" env-default:":8080"`
}

// PostgreSQL represents a PostgreSQL database configuration.
type PostgreSQL struct {
	User     string `env:"CATALOG_POSTGRESQL_USER" env-default:"postgres"`
	Password string `env:"CATALOG_POSTGRESQL_PASSWORD" env-default:"postgres"`
	Database string `env:"CATALOG_POSTGRESQL_DATABASE" env-default:"catalog"`
	Host     string `env:"CATALOG_POSTGRESQL_HOST" env-default:"localhost"`
	Port     string `env:"CATALOG_POSTGRESQL_PORT" env-default:"5432"`
	SSLMode  string `env:"CATALOG_POSTGRESQL_SSL_MODE" env-default:"disable"`
}

// Logger represents a logger configuration.
type Logger struct {
	LogLevel        string `env:"CATALOG_LOGGER_LOG_LEVEL" env-default:"debug"`
	LogFilename     string `env:"CATALOG_LOGGER_LOG_FILENAME" env-default:""`
	PrettyLogOutput bool   `env:"CATALOG_LOGGER_PRETTY_LOG_OUTPUT" env-default:"false"`
}

var (
	config Config
	once   sync.Once
)

// Get returns a new config.
func Get() *Config {
	once.Do(func() {
		err := cleanenv.ReadEnv(&config)
		if err != nil {
			log.Fatalf("read env: %v", err)
		}
	})

	return &config
}
