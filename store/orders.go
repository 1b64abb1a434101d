package store

import (
	"context"
	"fmt"

	"food-delivery-db/metrics"
	"food-delivery-db/models"
	"food-delivery-db/notify"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewOrder is the input to CreateOrder. PaymentMethod defaults to cash.
type NewOrder struct {
	UserID          uint           `validate:"required"`
	RestaurantID    uint           `validate:"required"`
	DeliveryAddress string         `validate:"required,min=5,max=255"`
	PaymentMethod   string         `validate:"omitempty,max=50"`
	Items           []NewOrderItem `validate:"required,min=1,dive"`
}

// NewOrderItem is one order line. A zero Price snapshots the menu item's current price.
type NewOrderItem struct {
	ItemID   uint    `validate:"required"`
	Quantity int     `validate:"min=1,max=1000"`
	Price    float64 `validate:"gte=0,lt=1000000"`
}

// CreateOrder inserts the order and its lines in one transaction. Every item must belong
// to the order's restaurant. The total is the sum of quantity times snapshot price.
func (s *Store) CreateOrder(ctx context.Context, in NewOrder) (*models.Order, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, invalid(err)
	}

	order := models.Order{
		UserID:          in.UserID,
		RestaurantID:    in.RestaurantID,
		Status:          models.StatusPending,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   models.PaymentPending,
		DeliveryAddress: in.DeliveryAddress,
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = "cash"
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make([]uint, 0, len(in.Items))
		for _, it := range in.Items {
			ids = append(ids, it.ItemID)
		}
		var menu []models.MenuItem
		if err := tx.Where("item_id IN ? AND restaurant_id = ?", ids, in.RestaurantID).Find(&menu).Error; err != nil {
			return fmt.Errorf("load menu items: %w", classify(err))
		}
		prices := make(map[uint]float64, len(menu))
		for _, m := range menu {
			prices[m.ID] = m.Price
		}

		for _, it := range in.Items {
			current, ok := prices[it.ItemID]
			if !ok {
				return fmt.Errorf("%w: menu item %d does not belong to restaurant %d", ErrInvalidInput, it.ItemID, in.RestaurantID)
			}
			price := it.Price
			if price == 0 {
				price = current
			}
			line := models.OrderItem{ItemID: it.ItemID, Quantity: it.Quantity, ItemPrice: price}
			order.Items = append(order.Items, line)
			order.TotalAmount += line.LineTotal()
		}

		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("insert order: %w", classify(err))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create order for user %d: %w", in.UserID, err)
	}

	s.log.WithFields(logrus.Fields{
		"order_id":      order.ID,
		"user_id":       order.UserID,
		"restaurant_id": order.RestaurantID,
		"total_amount":  order.TotalAmount,
		"items":         len(order.Items),
	}).Info("order created")
	s.notify(ctx, &order, models.StatusPending)
	return &order, nil
}

// GetOrder loads an order with its lines, delivery tracking and review.
func (s *Store) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_item_id") }).
		Preload("Delivery").
		Preload("Review").
		First(&order, id).Error
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", id, classify(err))
	}
	return &order, nil
}

// GetUserOrders returns the user's orders, newest first, with the restaurant name.
func (s *Store) GetUserOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Select("orders.*, restaurants.name AS restaurant_name").
		Joins("JOIN restaurants ON restaurants.restaurant_id = orders.restaurant_id").
		Where("orders.user_id = ?", userID).
		Order("orders.order_date DESC, orders.order_id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("orders of user %d: %w", userID, classify(err))
	}
	return orders, nil
}

// GetOrderItems returns the order's lines with the menu item name.
func (s *Store) GetOrderItems(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := s.db.WithContext(ctx).Model(&models.OrderItem{}).
		Select("order_items.*, menu_items.name AS item_name").
		Joins("JOIN menu_items ON menu_items.item_id = order_items.item_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.order_item_id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("items of order %d: %w", orderID, classify(err))
	}
	return items, nil
}

// UpdateOrderStatus sets the status to any member of the value set. Which transitions
// are allowed is decided by the caller.
func (s *Store) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q is not an order status; valid values are: %s",
			ErrInvalidStatus, status, models.DescribeOrderStatuses())
	}
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := order.Status
	if err := s.db.WithContext(ctx).Model(order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update status of order %d: %w", id, classify(err))
	}
	order.Status = status

	s.log.WithFields(logrus.Fields{
		"order_id":        id,
		"previous_status": prev,
		"status":          status,
	}).Info("order status updated")
	if prev != status {
		s.notify(ctx, order, status)
	}
	return order, nil
}

// UpdatePaymentStatus sets payment_status to any member of its value set.
func (s *Store) UpdatePaymentStatus(ctx context.Context, id uint, status models.PaymentStatus) (*models.Order, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q is not a payment status; valid values are: %s",
			ErrInvalidStatus, status, models.DescribePaymentStatuses())
	}
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(order).Update("payment_status", status).Error; err != nil {
		return nil, fmt.Errorf("update payment status of order %d: %w", id, classify(err))
	}
	order.PaymentStatus = status
	s.log.WithFields(logrus.Fields{"order_id": id, "payment_status": status}).Info("payment status updated")
	return order, nil
}

// DeleteOrder removes the order with its lines, tracking row and review.
func (s *Store) DeleteOrder(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &models.Order{}, id, "order")
}

func (s *Store) findOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, fmt.Errorf("order %d: %w", id, classify(err))
	}
	return &order, nil
}

// notify is best effort: the order row is already committed, so a publishing failure is
// logged and counted rather than returned.
func (s *Store) notify(ctx context.Context, order *models.Order, status models.OrderStatus) {
	if s.notifier == nil {
		return
	}
	n, err := notify.ForStatus(order.UserID, order.ID, status)
	if err != nil {
		s.log.WithError(err).Warn("no notification for status")
		return
	}
	if err := s.notifier.Publish(ctx, n); err != nil {
		metrics.NotificationsPublished.WithLabelValues(string(n.Type), "failed").Inc()
		s.log.WithError(err).WithField("order_id", order.ID).Error("failed to publish notification")
		return
	}
	metrics.NotificationsPublished.WithLabelValues(string(n.Type), "ok").Inc()
}
