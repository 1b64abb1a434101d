package database

import (
	"context"
	"io"
	"testing"
	"time"

	"food-delivery-db/config"
	"food-delivery-db/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	db, err := Open(config.Database{
		Driver:      config.DriverSQLite,
		Path:        ":memory:",
		PoolSize:    1,
		PoolRecycle: time.Hour,
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "food_delivery.db?_pragma=foreign_keys(1)", SQLiteDSN("food_delivery.db"))
	assert.Equal(t, "file:test.db?cache=shared&_pragma=foreign_keys(1)", SQLiteDSN("file:test.db?cache=shared"))
}

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(config.Database{
		Host:     "db.internal",
		Port:     3306,
		User:     "app",
		Password: "pw",
		Name:     "food_delivery_db",
	})
	assert.Equal(t, "app:pw@tcp(db.internal:3306)/food_delivery_db?charset=utf8mb4&parseTime=True&loc=Local", dsn)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(config.Database{Driver: "oracle"}, logrus.New())
	assert.ErrorContains(t, err, "unsupported driver")
}

func TestForeignKeysEnforced(t *testing.T) {
	db := openMemory(t)
	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}

func TestMigrateCreatesAllTables(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, Migrate(db))

	for _, name := range models.TableNames() {
		assert.True(t, db.Migrator().HasTable(name), name)
	}
	assert.True(t, db.Migrator().HasConstraint(&models.Review{}, "chk_reviews_rating"))
	assert.True(t, db.Migrator().HasConstraint(&models.Order{}, "chk_orders_status"))
	assert.True(t, db.Migrator().HasConstraint(&models.Order{}, "chk_orders_payment_status"))

	// Running it again is a no-op.
	require.NoError(t, Migrate(db))
}

func TestDescribe(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, Migrate(db))

	tables, err := Describe(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, tables, 8)

	columns := func(tbl Table) []string {
		var names []string
		for _, c := range tbl.Columns {
			names = append(names, c.Name)
		}
		return names
	}

	byName := make(map[string]Table, len(tables))
	for _, tbl := range tables {
		byName[tbl.Name] = tbl
		assert.Zero(t, tbl.Rows, tbl.Name)
	}
	assert.ElementsMatch(t, []string{
		"user_id", "username", "email", "password_hash", "phone", "address", "created_at",
	}, columns(byName["users"]))
	assert.ElementsMatch(t, []string{
		"order_id", "user_id", "restaurant_id", "order_date", "total_amount", "status",
		"payment_method", "payment_status", "delivery_address",
	}, columns(byName["orders"]))
	assert.ElementsMatch(t, []string{
		"order_item_id", "order_id", "item_id", "quantity", "item_price",
	}, columns(byName["order_items"]))
	assert.ElementsMatch(t, []string{
		"tracking_id", "order_id", "delivery_id", "assigned_at", "picked_up_at", "delivered_at",
	}, columns(byName["order_delivery"]))

	for _, c := range byName["orders"].Columns {
		if c.Name == "order_id" {
			assert.True(t, c.Primary)
		}
	}
}

func TestMemoryDatabaseOutlivesPoolRecycle(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	db, err := Open(config.Database{
		Driver:      config.DriverSQLite,
		Path:        ":memory:",
		PoolSize:    1,
		PoolRecycle: 50 * time.Millisecond,
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db))
	require.NoError(t, db.Create(&models.DeliveryPersonnel{Name: "Rahul Sharma", Phone: "9123456780"}).Error)

	time.Sleep(200 * time.Millisecond)

	var n int64
	require.NoError(t, db.Model(&models.DeliveryPersonnel{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestResetDropsTables(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, db.Create(&models.Restaurant{Name: "Test Kitchen", Address: "1 Test Lane"}).Error)

	require.NoError(t, Reset(db))
	for _, name := range models.TableNames() {
		assert.False(t, db.Migrator().HasTable(name), name)
	}

	require.NoError(t, Migrate(db))
	counts, err := Counts(context.Background(), db)
	require.NoError(t, err)
	assert.Zero(t, counts["restaurants"])
}
