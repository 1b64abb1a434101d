package store

import (
	"context"
	"fmt"
	"time"

	"food-delivery-db/models"

	"github.com/sirupsen/logrus"
)

// ListDeliveryPersonnel returns couriers ordered by id.
func (s *Store) ListDeliveryPersonnel(ctx context.Context, availableOnly bool) ([]models.DeliveryPersonnel, error) {
	query := s.db.WithContext(ctx)
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}
	var people []models.DeliveryPersonnel
	if err := query.Order("delivery_id").Find(&people).Error; err != nil {
		return nil, fmt.Errorf("list delivery personnel: %w", classify(err))
	}
	return people, nil
}

// AssignDelivery creates the tracking row for an order. An order can be dispatched once.
func (s *Store) AssignDelivery(ctx context.Context, orderID, deliveryID uint) (*models.OrderDelivery, error) {
	tracking := models.OrderDelivery{OrderID: orderID, DeliveryID: deliveryID}
	if err := s.db.WithContext(ctx).Create(&tracking).Error; err != nil {
		return nil, fmt.Errorf("assign order %d to courier %d: %w", orderID, deliveryID, classify(err))
	}
	s.log.WithFields(logrus.Fields{
		"tracking_id": tracking.ID,
		"order_id":    orderID,
		"delivery_id": deliveryID,
	}).Info("delivery assigned")
	return &tracking, nil
}

// GetDelivery returns the tracking row of an order.
func (s *Store) GetDelivery(ctx context.Context, orderID uint) (*models.OrderDelivery, error) {
	var tracking models.OrderDelivery
	if err := s.db.WithContext(ctx).Where("order_id = ?", orderID).First(&tracking).Error; err != nil {
		return nil, fmt.Errorf("delivery of order %d: %w", orderID, classify(err))
	}
	return &tracking, nil
}

// MarkPickedUp stamps picked_up_at. It fails if the order was already picked up.
func (s *Store) MarkPickedUp(ctx context.Context, orderID uint, at time.Time) (*models.OrderDelivery, error) {
	tracking, err := s.GetDelivery(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if tracking.PickedUpAt != nil {
		return nil, fmt.Errorf("%w: order %d was already picked up", ErrInvalidInput, orderID)
	}
	if err := s.db.WithContext(ctx).Model(tracking).Update("picked_up_at", at).Error; err != nil {
		return nil, fmt.Errorf("mark order %d picked up: %w", orderID, classify(err))
	}
	tracking.PickedUpAt = &at
	s.log.WithField("order_id", orderID).Info("order picked up")
	return tracking, nil
}

// MarkDelivered stamps delivered_at. Timestamps fill in order, so pickup must come first.
func (s *Store) MarkDelivered(ctx context.Context, orderID uint, at time.Time) (*models.OrderDelivery, error) {
	tracking, err := s.GetDelivery(ctx, orderID)
	if err != nil {
		return nil, err
	}
	switch {
	case tracking.PickedUpAt == nil:
		return nil, fmt.Errorf("%w: order %d has not been picked up", ErrInvalidInput, orderID)
	case tracking.DeliveredAt != nil:
		return nil, fmt.Errorf("%w: order %d was already delivered", ErrInvalidInput, orderID)
	}
	if err := s.db.WithContext(ctx).Model(tracking).Update("delivered_at", at).Error; err != nil {
		return nil, fmt.Errorf("mark order %d delivered: %w", orderID, classify(err))
	}
	tracking.DeliveredAt = &at
	s.log.WithField("order_id", orderID).Info("order delivered")
	return tracking, nil
}

type locationInput struct {
	Location string `validate:"required,max=255"`
}

// UpdateCourierLocation records where a courier currently is.
func (s *Store) UpdateCourierLocation(ctx context.Context, deliveryID uint, location string) error {
	if err := s.validate.Struct(locationInput{Location: location}); err != nil {
		return invalid(err)
	}
	res := s.db.WithContext(ctx).Model(&models.DeliveryPersonnel{}).
		Where("delivery_id = ?", deliveryID).
		Update("current_location", location)
	if res.Error != nil {
		return fmt.Errorf("update location of courier %d: %w", deliveryID, classify(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("courier %d: %w", deliveryID, ErrNotFound)
	}
	return nil
}

// SetCourierAvailability toggles is_available for a courier.
func (s *Store) SetCourierAvailability(ctx context.Context, deliveryID uint, available bool) error {
	res := s.db.WithContext(ctx).Model(&models.DeliveryPersonnel{}).
		Where("delivery_id = ?", deliveryID).
		Update("is_available", available)
	if res.Error != nil {
		return fmt.Errorf("update availability of courier %d: %w", deliveryID, classify(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("courier %d: %w", deliveryID, ErrNotFound)
	}
	return nil
}
