package seed

import (
	"context"
	"fmt"

	"food-delivery-db/metrics"
	"food-delivery-db/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Result struct {
	Restaurants       int `json:"restaurants"`
	MenuItems         int `json:"menu_items"`
	DeliveryPersonnel int `json:"delivery_personnel"`
	Skipped           int `json:"skipped"`
}

// Load inserts the sample rows in a single transaction. Rows already present by name are
// skipped, so running it twice leaves the tables unchanged.
func Load(ctx context.Context, db *gorm.DB, log logrus.FieldLogger) (Result, error) {
	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range Restaurants {
			exists, err := existsByName(tx, &models.Restaurant{}, r.Name)
			if err != nil {
				return err
			}
			if exists {
				res.Skipped++
				continue
			}
			restaurant := copyRestaurant(r)
			if err := tx.Create(&restaurant).Error; err != nil {
				return fmt.Errorf("seed restaurant %s: %w", r.Name, err)
			}
			res.Restaurants++
			res.MenuItems += len(restaurant.MenuItems)
			log.WithFields(logrus.Fields{
				"restaurant_id": restaurant.ID,
				"name":          restaurant.Name,
				"menu_items":    len(restaurant.MenuItems),
			}).Debug("seeded restaurant")
		}

		for _, p := range DeliveryPersonnel {
			exists, err := existsByName(tx, &models.DeliveryPersonnel{}, p.Name)
			if err != nil {
				return err
			}
			if exists {
				res.Skipped++
				continue
			}
			courier := p
			if err := tx.Create(&courier).Error; err != nil {
				return fmt.Errorf("seed delivery personnel %s: %w", p.Name, err)
			}
			res.DeliveryPersonnel++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	metrics.SeedRowsInserted.WithLabelValues(models.Restaurant{}.TableName()).Add(float64(res.Restaurants))
	metrics.SeedRowsInserted.WithLabelValues(models.MenuItem{}.TableName()).Add(float64(res.MenuItems))
	metrics.SeedRowsInserted.WithLabelValues(models.DeliveryPersonnel{}.TableName()).Add(float64(res.DeliveryPersonnel))

	log.WithFields(logrus.Fields{
		"restaurants":        res.Restaurants,
		"menu_items":         res.MenuItems,
		"delivery_personnel": res.DeliveryPersonnel,
		"skipped":            res.Skipped,
	}).Info("seed data loaded")
	return res, nil
}

func existsByName(tx *gorm.DB, model interface{}, name string) (bool, error) {
	var n int64
	if err := tx.Model(model).Where("name = ?", name).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check %s: %w", name, err)
	}
	return n > 0, nil
}

func copyRestaurant(r models.Restaurant) models.Restaurant {
	out := r
	out.MenuItems = append([]models.MenuItem(nil), r.MenuItems...)
	return out
}
