package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"food-delivery-db/catalog"
	"food-delivery-db/config"
	"food-delivery-db/models"
	"food-delivery-db/notify"
	"food-delivery-db/store"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// writeUsage maps each write command to its argument synopsis.
var writeUsage = map[string]string{
	"order-status":      "order-status <order_id> <status>",
	"payment-status":    "payment-status <order_id> <status>",
	"dispatch":          "dispatch <order_id> <delivery_id>",
	"pickup":            "pickup <order_id>",
	"deliver":           "deliver <order_id>",
	"menu-price":        "menu-price <item_id> <price>",
	"menu-availability": "menu-availability <item_id> <true|false>",
	"delete-restaurant": "delete-restaurant <restaurant_id>",
}

func isWriteCommand(cmd string) bool {
	_, ok := writeUsage[cmd]
	return ok
}

// app carries what the write commands need. Status changes publish through the store's
// notifier and menu writes go through the catalog.
type app struct {
	store   *store.Store
	catalog *catalog.Catalog
	out     io.Writer
	now     func() time.Time
}

// newStore builds the store, attaching the Kafka notifier when it is enabled. The
// returned func closes the producer.
func newStore(cfg *config.Config, db *gorm.DB, log *logrus.Logger) (*store.Store, func(), error) {
	closeFn := func() {}
	var opts []store.Option
	if cfg.Kafka.Enabled {
		publisher, err := notify.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn = func() {
			if err := publisher.Close(); err != nil {
				log.WithError(err).Warn("failed to close kafka producer")
			}
		}
		opts = append(opts, store.WithNotifier(publisher))
	}
	return store.New(db, log, opts...), closeFn, nil
}

func newCatalog(cfg *config.Config, st *store.Store) *catalog.Catalog {
	if !cfg.Cache.Enabled {
		return catalog.New(st, 0, 0)
	}
	return catalog.New(st, cfg.Cache.Size, cfg.Cache.TTL)
}

func (a *app) exec(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "order-status":
		id, err := idArg(cmd, args, 0, 2)
		if err != nil {
			return err
		}
		order, err := a.store.UpdateOrderStatus(ctx, id, models.OrderStatus(args[1]))
		if err != nil {
			return err
		}
		return a.print(order)

	case "payment-status":
		id, err := idArg(cmd, args, 0, 2)
		if err != nil {
			return err
		}
		order, err := a.store.UpdatePaymentStatus(ctx, id, models.PaymentStatus(args[1]))
		if err != nil {
			return err
		}
		return a.print(order)

	case "dispatch":
		orderID, err := idArg(cmd, args, 0, 2)
		if err != nil {
			return err
		}
		courierID, err := idArg(cmd, args, 1, 2)
		if err != nil {
			return err
		}
		tracking, err := a.store.AssignDelivery(ctx, orderID, courierID)
		if err != nil {
			return err
		}
		return a.print(tracking)

	case "pickup":
		orderID, err := idArg(cmd, args, 0, 1)
		if err != nil {
			return err
		}
		tracking, err := a.store.MarkPickedUp(ctx, orderID, a.now())
		if err != nil {
			return err
		}
		if _, err := a.store.UpdateOrderStatus(ctx, orderID, models.StatusOutForDelivery); err != nil {
			return err
		}
		return a.print(tracking)

	case "deliver":
		orderID, err := idArg(cmd, args, 0, 1)
		if err != nil {
			return err
		}
		tracking, err := a.store.MarkDelivered(ctx, orderID, a.now())
		if err != nil {
			return err
		}
		if _, err := a.store.UpdateOrderStatus(ctx, orderID, models.StatusDelivered); err != nil {
			return err
		}
		return a.print(tracking)

	case "menu-price":
		id, err := idArg(cmd, args, 0, 2)
		if err != nil {
			return err
		}
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("%w: price %q: %v", store.ErrInvalidInput, args[1], err)
		}
		item, err := a.catalog.UpdateMenuItemPrice(ctx, id, price)
		if err != nil {
			return err
		}
		return a.print(item)

	case "menu-availability":
		id, err := idArg(cmd, args, 0, 2)
		if err != nil {
			return err
		}
		available, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("%w: availability %q: %v", store.ErrInvalidInput, args[1], err)
		}
		item, err := a.catalog.SetMenuItemAvailability(ctx, id, available)
		if err != nil {
			return err
		}
		return a.print(item)

	case "delete-restaurant":
		id, err := idArg(cmd, args, 0, 1)
		if err != nil {
			return err
		}
		if err := a.catalog.DeleteRestaurant(ctx, id); err != nil {
			return err
		}
		return a.print(map[string]uint{"deleted_restaurant_id": id})
	}
	return fmt.Errorf("unknown command %q", cmd)
}

// idArg checks the argument count and parses args[i] as a positive id.
func idArg(cmd string, args []string, i, want int) (uint, error) {
	if len(args) != want {
		return 0, fmt.Errorf("%w: usage: fooddb %s", store.ErrInvalidInput, writeUsage[cmd])
	}
	id, err := strconv.ParseUint(args[i], 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: invalid id %q", store.ErrInvalidInput, args[i])
	}
	return uint(id), nil
}

func (a *app) print(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
