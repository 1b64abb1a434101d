package store

import (
	"context"
	"fmt"

	"food-delivery-db/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantFilter narrows ListRestaurants. Cuisine and Search are substring matches.
type RestaurantFilter struct {
	Cuisine    string
	Search     string
	ActiveOnly bool
}

// ListRestaurants returns matching restaurants ordered by id, without menus.
func (s *Store) ListRestaurants(ctx context.Context, f RestaurantFilter) ([]models.Restaurant, error) {
	query := s.db.WithContext(ctx).Model(&models.Restaurant{})
	if f.Cuisine != "" {
		query = query.Where("cuisine_type LIKE ?", "%"+f.Cuisine+"%")
	}
	if f.Search != "" {
		query = query.Where("name LIKE ?", "%"+f.Search+"%")
	}
	if f.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var restaurants []models.Restaurant
	if err := query.Order("restaurant_id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", classify(err))
	}
	return restaurants, nil
}

// GetRestaurant loads one restaurant with its menu.
func (s *Store) GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("MenuItems", func(db *gorm.DB) *gorm.DB { return db.Order("item_id") }).
		First(&restaurant, id).Error
	if err != nil {
		return nil, fmt.Errorf("restaurant %d: %w", id, classify(err))
	}
	return &restaurant, nil
}

// MenuFilter narrows a menu by exact category and availability.
type MenuFilter struct {
	Category      string
	AvailableOnly bool
}

func (s *Store) GetMenuItems(ctx context.Context, restaurantID uint, f MenuFilter) ([]models.MenuItem, error) {
	query := s.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}
	var items []models.MenuItem
	if err := query.Order("item_id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("menu of restaurant %d: %w", restaurantID, classify(err))
	}
	return items, nil
}

func (s *Store) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, fmt.Errorf("menu item %d: %w", id, classify(err))
	}
	return &item, nil
}

type priceInput struct {
	Price float64 `validate:"gte=0,lt=1000000"`
}

// UpdateMenuItemPrice changes the live price. Existing order lines keep their snapshot.
func (s *Store) UpdateMenuItemPrice(ctx context.Context, id uint, price float64) (*models.MenuItem, error) {
	if err := s.validate.Struct(priceInput{Price: price}); err != nil {
		return nil, invalid(err)
	}
	item, err := s.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(item).Update("price", price).Error; err != nil {
		return nil, fmt.Errorf("update price of menu item %d: %w", id, classify(err))
	}
	item.Price = price
	s.log.WithFields(logrus.Fields{"item_id": id, "price": price}).Info("menu item price updated")
	return item, nil
}

// SetMenuItemAvailability toggles is_available. Update is used rather than Save so that
// false is written instead of falling back to the column default.
func (s *Store) SetMenuItemAvailability(ctx context.Context, id uint, available bool) (*models.MenuItem, error) {
	item, err := s.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(item).Update("is_available", available).Error; err != nil {
		return nil, fmt.Errorf("update availability of menu item %d: %w", id, classify(err))
	}
	item.IsAvailable = available
	return item, nil
}

// DeleteRestaurant removes the restaurant; the database cascades to its menu items,
// orders and reviews.
func (s *Store) DeleteRestaurant(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &models.Restaurant{}, id, "restaurant")
}
