package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"DB_DRIVER":     "sqlite",
		"DB_PATH":       "food_delivery.db",
		"LOG_LEVEL":     "info",
		"LOG_FORMAT":    "text",
		"KAFKA_ENABLED": "false",
		"DB_POOL_SIZE":  "5",
	})
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, 5, cfg.DB.PoolSize)
	assert.NotZero(t, cfg.DB.PoolRecycle)
	assert.NotEmpty(t, cfg.Currency)
	assert.NotEmpty(t, cfg.Kafka.Topic)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"DB_DRIVER":       "MySQL",
		"DB_HOST":         "db.internal",
		"DB_PORT":         "3307",
		"DB_NAME":         "orders",
		"DB_POOL_SIZE":    "10",
		"DB_POOL_RECYCLE": "30m",
		"LOG_LEVEL":       "debug",
		"LOG_FORMAT":      "json",
		"CACHE_TTL":       "90s",
		"KAFKA_ENABLED":   "true",
		"KAFKA_BROKERS":   "k1:9092,k2:9092",
		"CURRENCY":        "INR",
	})
	require.NoError(t, err)

	assert.Equal(t, DriverMySQL, cfg.DB.Driver)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 3307, cfg.DB.Port)
	assert.Equal(t, "orders", cfg.DB.Name)
	assert.Equal(t, 10, cfg.DB.PoolSize)
	assert.Equal(t, 30*time.Minute, cfg.DB.PoolRecycle)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "INR", cfg.Currency)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":  {"DB_DRIVER": "postgres"},
		"zero pool":       {"DB_DRIVER": "sqlite", "DB_POOL_SIZE": "0"},
		"bad log level":   {"DB_DRIVER": "sqlite", "DB_POOL_SIZE": "5", "LOG_LEVEL": "loud"},
		"bad log format":  {"DB_DRIVER": "sqlite", "DB_POOL_SIZE": "5", "LOG_LEVEL": "info", "LOG_FORMAT": "xml"},
		"bad pool number": {"DB_POOL_SIZE": "many"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(env)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			DB:  Database{Driver: DriverSQLite, Path: "x.db", PoolSize: 1},
			Log: Log{Level: "info", Format: "text"},
		}
	}

	cfg := base()
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.DB.Path = ""
	assert.ErrorContains(t, cfg.Validate(), "DB_PATH")

	cfg = base()
	cfg.DB.Driver = DriverMySQL
	assert.ErrorContains(t, cfg.Validate(), "DB_HOST")

	cfg = base()
	cfg.Kafka.Enabled = true
	assert.ErrorContains(t, cfg.Validate(), "KAFKA_BROKERS")
}

func TestNewLogger(t *testing.T) {
	log := NewLogger(Log{Level: "warn", Format: "json"})
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	log = NewLogger(Log{Level: "nonsense", Format: "text"})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}
