// Package database provides record store configuration options.
package database

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Options defines configuration options for the record store.
type Options struct {
	// Driver selects the backend: postgres or sqlite.
	Driver string `json:"driver" mapstructure:"driver"`

	// DSN is the sqlite file path (":memory:" for in-memory).
	DSN string `json:"dsn" mapstructure:"dsn"`

	Host                  string        `json:"host" mapstructure:"host"`
	Port                  int           `json:"port" mapstructure:"port"`
	Username              string        `json:"username" mapstructure:"username"`
	Password              string        `json:"password" mapstructure:"password"`
	Database              string        `json:"database" mapstructure:"database"`
	SSLMode               string        `json:"ssl-mode" mapstructure:"ssl-mode"`
	MaxIdleConnections    int           `json:"max-idle-connections" mapstructure:"max-idle-connections"`
	MaxOpenConnections    int           `json:"max-open-connections" mapstructure:"max-open-connections"`
	MaxConnectionLifeTime time.Duration `json:"max-connection-life-time" mapstructure:"max-connection-life-time"`
	LogLevel              int           `json:"log-level" mapstructure:"log-level"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		Driver:                "sqlite",
		DSN:                   "data/luminalib.db",
		Host:                  "127.0.0.1",
		Port:                  5432,
		Username:              "postgres",
		Password:              "",
		Database:              "luminalib",
		SSLMode:               "disable",
		MaxIdleConnections:    10,
		MaxOpenConnections:    100,
		MaxConnectionLifeTime: 10 * time.Second,
		LogLevel:              1, // Silent
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	switch o.Driver {
	case "postgres", "sqlite":
		return nil
	default:
		return fmt.Errorf("invalid database driver %q", o.Driver)
	}
}

// AddFlags adds flags for database options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Driver, "database.driver", o.Driver, "Database driver (postgres|sqlite)")
	fs.StringVar(&o.DSN, "database.dsn", o.DSN, "SQLite database file path")
	fs.StringVar(&o.Host, "database.host", o.Host, "PostgreSQL host")
	fs.IntVar(&o.Port, "database.port", o.Port, "PostgreSQL port")
	fs.StringVar(&o.Username, "database.username", o.Username, "PostgreSQL username")
	fs.StringVar(&o.Password, "database.password", o.Password, "PostgreSQL password")
	fs.StringVar(&o.Database, "database.database", o.Database, "PostgreSQL database name")
	fs.StringVar(&o.SSLMode, "database.ssl-mode", o.SSLMode, "PostgreSQL SSL mode")
	fs.IntVar(&o.MaxIdleConnections, "database.max-idle-connections", o.MaxIdleConnections, "Max idle connections")
	fs.IntVar(&o.MaxOpenConnections, "database.max-open-connections", o.MaxOpenConnections, "Max open connections")
	fs.DurationVar(&o.MaxConnectionLifeTime, "database.max-connection-life-time", o.MaxConnectionLifeTime, "Max connection life time")
	fs.IntVar(&o.LogLevel, "database.log-level", o.LogLevel, "GORM log level (1=silent 2=error 3=warn 4=info)")
}

// PostgresDSN builds the PostgreSQL connection string.
func (o *Options) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		o.Host, o.Port, o.Username, o.Password, o.Database, o.SSLMode)
}
