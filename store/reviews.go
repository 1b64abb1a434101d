package store

import (
	"context"
	"fmt"

	"food-delivery-db/models"

	"github.com/sirupsen/logrus"
)

// NewReview is one rating of a restaurant, tied to the order it reviews.
type NewReview struct {
	UserID       uint   `validate:"required"`
	RestaurantID uint   `validate:"required"`
	OrderID      uint   `validate:"required"`
	Rating       int    `validate:"min=1,max=5"`
	Comment      string `validate:"max=1000"`
}

func (s *Store) CreateReview(ctx context.Context, in NewReview) (*models.Review, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, invalid(err)
	}
	review := models.Review{
		UserID:       in.UserID,
		RestaurantID: in.RestaurantID,
		OrderID:      in.OrderID,
		Rating:       in.Rating,
		Comment:      in.Comment,
	}
	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, fmt.Errorf("create review for order %d: %w", in.OrderID, classify(err))
	}
	s.log.WithFields(logrus.Fields{
		"review_id":     review.ID,
		"restaurant_id": review.RestaurantID,
		"rating":        review.Rating,
	}).Info("review created")
	return &review, nil
}

// GetRestaurantReviews lists a restaurant's reviews, newest first.
func (s *Store) GetRestaurantReviews(ctx context.Context, restaurantID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("review_date DESC, review_id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("reviews of restaurant %d: %w", restaurantID, classify(err))
	}
	return reviews, nil
}
