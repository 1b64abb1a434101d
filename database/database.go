package database

import (
	"fmt"
	"strings"
	"time"

	"food-delivery-db/config"
	"food-delivery-db/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured engine. SQLite connections always enforce foreign
// keys, otherwise the cascades in the schema would be inert.
func Open(cfg config.Database, log *logrus.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(SQLiteDSN(cfg.Path))
	case config.DriverMySQL:
		dialector = mysql.Open(MySQLDSN(cfg))
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	level := logger.Warn
	if cfg.Echo {
		level = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	if cfg.Driver == config.DriverSQLite && isMemory(cfg.Path) {
		// Each pooled connection to :memory: would be a separate database, and closing
		// the only one discards it, so the connection is never recycled.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	} else {
		sqlDB.SetMaxOpenConns(cfg.PoolSize)
		sqlDB.SetMaxIdleConns(cfg.PoolSize)
		sqlDB.SetConnMaxLifetime(cfg.PoolRecycle)
	}

	log.WithFields(logrus.Fields{"driver": cfg.Driver, "database": name(cfg)}).Info("database connected")
	return db, nil
}

// SQLiteDSN appends the foreign key pragma to a file path or URI.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

func MySQLDSN(cfg config.Database) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Name,
	)
}

func isMemory(path string) bool {
	return strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory")
}

func name(cfg config.Database) string {
	if cfg.Driver == config.DriverSQLite {
		return cfg.Path
	}
	return cfg.Name
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates all eight tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Reset drops every table, children first.
func Reset(db *gorm.DB) error {
	all := models.All()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("failed to drop %T: %w", all[i], err)
		}
	}
	return nil
}
