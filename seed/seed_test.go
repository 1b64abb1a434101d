package seed

import (
	"context"
	"io"
	"testing"
	"time"

	"food-delivery-db/config"
	"food-delivery-db/database"
	"food-delivery-db/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gorm.DB, *logrus.Logger) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	db, err := database.Open(config.Database{
		Driver:      config.DriverSQLite,
		Path:        ":memory:",
		PoolSize:    1,
		PoolRecycle: time.Hour,
	}, log)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db, log
}

func TestLoadInsertsSampleData(t *testing.T) {
	db, log := setup(t)

	res, err := Load(context.Background(), db, log)
	require.NoError(t, err)
	assert.Equal(t, Result{Restaurants: 5, MenuItems: 15, DeliveryPersonnel: 3}, res)

	var restaurants []models.Restaurant
	require.NoError(t, db.Preload("MenuItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("item_id")
	}).Order("restaurant_id").Find(&restaurants).Error)
	require.Len(t, restaurants, 5)

	want := map[string]map[string]float64{
		"Spice Garden":   {"Butter Chicken": 12.99, "Paneer Tikka": 9.99, "Garlic Naan": 2.99},
		"Pizza Paradise": {"Margherita Pizza": 10.99, "Pepperoni Pizza": 12.99, "Garlic Bread": 4.99},
		"Dragon Wok":     {"Kung Pao Chicken": 11.99, "Veg Fried Rice": 8.99, "Spring Rolls": 5.99},
		"Burger Barn":    {"Classic Cheeseburger": 9.49, "Bacon Double Burger": 11.99, "French Fries": 3.49},
		"Taco Fiesta":    {"Chicken Tacos": 8.99, "Beef Burrito": 10.49, "Nachos Supreme": 7.99},
	}
	for _, r := range restaurants {
		menu, ok := want[r.Name]
		require.True(t, ok, "unexpected restaurant %q", r.Name)
		assert.True(t, r.IsActive, r.Name)
		assert.GreaterOrEqual(t, r.Rating, 0.0, r.Name)
		assert.LessOrEqual(t, r.Rating, 5.0, r.Name)
		require.Len(t, r.MenuItems, 3, r.Name)
		for _, item := range r.MenuItems {
			price, ok := menu[item.Name]
			require.True(t, ok, "unexpected menu item %q at %s", item.Name, r.Name)
			assert.Equal(t, price, item.Price, item.Name)
			assert.True(t, item.IsAvailable, item.Name)
			assert.Equal(t, r.ID, item.RestaurantID)
		}
	}

	var couriers []models.DeliveryPersonnel
	require.NoError(t, db.Order("delivery_id").Find(&couriers).Error)
	require.Len(t, couriers, 3)
	assert.Equal(t, "Rahul Sharma", couriers[0].Name)
	assert.Equal(t, "Priya Patel", couriers[1].Name)
	assert.Equal(t, "Amit Kumar", couriers[2].Name)
	for _, c := range couriers {
		assert.True(t, c.IsAvailable, c.Name)
		assert.NotEmpty(t, c.Phone, c.Name)
		assert.GreaterOrEqual(t, c.Rating, 0.0, c.Name)
		assert.LessOrEqual(t, c.Rating, 5.0, c.Name)
	}
}

func TestLoadLeavesOtherTablesEmpty(t *testing.T) {
	db, log := setup(t)
	_, err := Load(context.Background(), db, log)
	require.NoError(t, err)

	counts, err := database.Counts(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"users":              0,
		"restaurants":        5,
		"menu_items":         15,
		"delivery_personnel": 3,
		"orders":             0,
		"order_items":        0,
		"reviews":            0,
		"order_delivery":     0,
	}, counts)
}

func TestLoadIsIdempotent(t *testing.T) {
	db, log := setup(t)
	ctx := context.Background()

	_, err := Load(ctx, db, log)
	require.NoError(t, err)
	res, err := Load(ctx, db, log)
	require.NoError(t, err)
	assert.Equal(t, Result{Skipped: 8}, res)

	counts, err := database.Counts(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(5), counts["restaurants"])
	assert.Equal(t, int64(15), counts["menu_items"])
	assert.Equal(t, int64(3), counts["delivery_personnel"])
}

func TestLoadDoesNotMutatePackageData(t *testing.T) {
	db, log := setup(t)
	_, err := Load(context.Background(), db, log)
	require.NoError(t, err)

	for _, r := range Restaurants {
		assert.Zero(t, r.ID, r.Name)
		for _, item := range r.MenuItems {
			assert.Zero(t, item.ID, item.Name)
			assert.Zero(t, item.RestaurantID, item.Name)
		}
	}
	for _, p := range DeliveryPersonnel {
		assert.Zero(t, p.ID, p.Name)
	}
}
