package main

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"food-delivery-db/catalog"
	"food-delivery-db/config"
	"food-delivery-db/database"
	"food-delivery-db/models"
	"food-delivery-db/notify"
	"food-delivery-db/seed"
	"food-delivery-db/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type cliFixture struct {
	app   *app
	inbox *notify.MemoryPublisher
	order *models.Order
	out   *bytes.Buffer
}

func newCLIFixture(t *testing.T) cliFixture {
	t.Helper()
	ctx := context.Background()
	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := database.Open(config.Database{
		Driver:      config.DriverSQLite,
		Path:        ":memory:",
		PoolSize:    1,
		PoolRecycle: time.Hour,
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db))
	_, err = seed.Load(ctx, db, log)
	require.NoError(t, err)

	inbox := notify.NewMemoryPublisher()
	st := store.New(db, log, store.WithNotifier(inbox), store.WithPasswordCost(bcrypt.MinCost))
	user, err := st.CreateUser(ctx, store.NewUser{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	menu, err := st.GetMenuItems(ctx, 1, store.MenuFilter{})
	require.NoError(t, err)
	order, err := st.CreateOrder(ctx, store.NewOrder{
		UserID:          user.ID,
		RestaurantID:    1,
		DeliveryAddress: "221B Baker Street",
		Items:           []store.NewOrderItem{{ItemID: menu[0].ID, Quantity: 1}},
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return cliFixture{
		app:   &app{store: st, catalog: catalog.New(st, 16, time.Minute), out: out, now: time.Now},
		inbox: inbox,
		order: order,
		out:   out,
	}
}

func TestOrderLifecyclePublishesNotifications(t *testing.T) {
	f := newCLIFixture(t)
	ctx := context.Background()
	id := []string{"1"}

	require.NoError(t, f.app.exec(ctx, "order-status", []string{"1", "confirmed"}))
	require.NoError(t, f.app.exec(ctx, "order-status", []string{"1", "preparing"}))
	require.NoError(t, f.app.exec(ctx, "dispatch", []string{"1", "2"}))
	require.NoError(t, f.app.exec(ctx, "pickup", id))
	require.NoError(t, f.app.exec(ctx, "deliver", id))
	require.NoError(t, f.app.exec(ctx, "payment-status", []string{"1", "completed"}))

	var types []notify.Type
	for _, n := range f.inbox.Notifications(f.order.UserID, false) {
		types = append(types, n.Type)
	}
	assert.Equal(t, []notify.Type{
		notify.OrderPlaced,
		notify.OrderConfirmed,
		notify.Preparing,
		notify.OutForDelivery,
		notify.Delivered,
	}, types)

	order, err := f.app.store.GetOrder(ctx, f.order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, order.Status)
	assert.Equal(t, models.PaymentCompleted, order.PaymentStatus)
	require.NotNil(t, order.Delivery)
	assert.Equal(t, "delivered", order.Delivery.Stage())
	assert.Contains(t, f.out.String(), `"tracking_id"`)
}

func TestOrderStatusRejectsUnknownValue(t *testing.T) {
	f := newCLIFixture(t)
	err := f.app.exec(context.Background(), "order-status", []string{"1", "shipped"})
	assert.ErrorIs(t, err, store.ErrInvalidStatus)
	assert.Len(t, f.inbox.Notifications(f.order.UserID, false), 1)
}

func TestMenuCommandsGoThroughCatalog(t *testing.T) {
	f := newCLIFixture(t)
	ctx := context.Background()

	menu, err := f.app.catalog.Menu(ctx, 1, store.MenuFilter{})
	require.NoError(t, err)
	require.Equal(t, 12.99, menu[0].Price)

	require.NoError(t, f.app.exec(ctx, "menu-price", []string{"1", "14.49"}))
	menu, err = f.app.catalog.Menu(ctx, 1, store.MenuFilter{})
	require.NoError(t, err)
	assert.Equal(t, 14.49, menu[0].Price)

	require.NoError(t, f.app.exec(ctx, "menu-availability", []string{"1", "false"}))
	available, err := f.app.catalog.Menu(ctx, 1, store.MenuFilter{AvailableOnly: true})
	require.NoError(t, err)
	assert.Len(t, available, 2)

	items, err := f.app.store.GetOrderItems(ctx, f.order.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.99, items[0].ItemPrice)
}

func TestDeleteRestaurantCommand(t *testing.T) {
	f := newCLIFixture(t)
	ctx := context.Background()

	_, err := f.app.catalog.Restaurant(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, f.app.exec(ctx, "delete-restaurant", []string{"1"}))

	_, err = f.app.catalog.Restaurant(ctx, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = f.app.store.GetOrder(ctx, f.order.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestWriteCommandArguments(t *testing.T) {
	f := newCLIFixture(t)
	ctx := context.Background()

	cases := map[string][]string{
		"order-status":      {"1"},
		"dispatch":          {"1", "x"},
		"pickup":            {"0"},
		"menu-price":        {"1", "cheap"},
		"menu-availability": {"1", "maybe"},
		"delete-restaurant": {},
	}
	for cmd, args := range cases {
		t.Run(cmd, func(t *testing.T) {
			assert.ErrorIs(t, f.app.exec(ctx, cmd, args), store.ErrInvalidInput)
		})
	}
	assert.True(t, isWriteCommand("dispatch"))
	assert.False(t, isWriteCommand("serve"))
}

func TestNewStoreWithoutKafka(t *testing.T) {
	cfg := &config.Config{Cache: config.Cache{Enabled: false}}
	st, closeFn, err := newStore(cfg, nil, logrus.New())
	require.NoError(t, err)
	require.NotNil(t, st)
	closeFn()

	assert.NotNil(t, newCatalog(cfg, st))
}
