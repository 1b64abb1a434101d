package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	DB      Database
	Log     Log
	Cache   Cache
	Kafka   Kafka
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE"`
	// Currency is reported alongside prices; amounts are stored without it.
	Currency string `env:"CURRENCY" envDefault:"USD"`
}

type Database struct {
	Driver      string        `env:"DB_DRIVER" envDefault:"sqlite"`
	Path        string        `env:"DB_PATH" envDefault:"food_delivery.db"`
	Host        string        `env:"DB_HOST" envDefault:"localhost"`
	Port        int           `env:"DB_PORT" envDefault:"3306"`
	User        string        `env:"DB_USER" envDefault:"root"`
	Password    string        `env:"DB_PASSWORD"`
	Name        string        `env:"DB_NAME" envDefault:"food_delivery_db"`
	PoolSize    int           `env:"DB_POOL_SIZE" envDefault:"5"`
	PoolRecycle time.Duration `env:"DB_POOL_RECYCLE" envDefault:"1h"`
	Echo        bool          `env:"DB_ECHO" envDefault:"false"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Cache configures the catalog cache. The inspection server never writes, so rows
// changed by other commands (seed, reset, menu-price) can be served for up to TTL.
type Cache struct {
	Enabled bool          `env:"CACHE_ENABLED" envDefault:"true"`
	TTL     time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	Size    int           `env:"CACHE_SIZE" envDefault:"256"`
}

type Kafka struct {
	Enabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers []string `env:"KAFKA_BROKERS" envDefault:"127.0.0.1:9092" envSeparator:","`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"order-notifications"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse(nil)
}

// Parse builds a Config from the process environment, overlaid with the given values.
func Parse(overrides map[string]string) (*Config, error) {
	var cfg Config
	opts := env.Options{}
	if overrides != nil {
		environ := env.ToMap(os.Environ())
		for k, v := range overrides {
			environ[k] = v
		}
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	switch c.DB.Driver {
	case DriverSQLite:
		if c.DB.Path == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	case DriverMySQL:
		if c.DB.Host == "" || c.DB.Name == "" {
			return errors.New("DB_HOST and DB_NAME are required for the mysql driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or mysql)", c.DB.Driver)
	}
	if c.DB.PoolSize < 1 {
		return fmt.Errorf("DB_POOL_SIZE must be positive, got %d", c.DB.PoolSize)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Log.Format)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is set")
	}
	return nil
}

// NewLogger builds the process logger from the Log section.
func NewLogger(cfg Log) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
