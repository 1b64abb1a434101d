// Package catalog serves restaurant and menu reads from an expiring LRU cache in front of
// the store. Menu writes go through the catalog so a cached menu never shows a stale price.
package catalog

import (
	"context"
	"fmt"
	"time"

	"food-delivery-db/metrics"
	"food-delivery-db/models"
	"food-delivery-db/store"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Source is the store surface the catalog reads through and writes through.
type Source interface {
	ListRestaurants(ctx context.Context, f store.RestaurantFilter) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error)
	GetMenuItems(ctx context.Context, restaurantID uint, f store.MenuFilter) ([]models.MenuItem, error)
	UpdateMenuItemPrice(ctx context.Context, id uint, price float64) (*models.MenuItem, error)
	SetMenuItemAvailability(ctx context.Context, id uint, available bool) (*models.MenuItem, error)
	DeleteRestaurant(ctx context.Context, id uint) error
}

// Catalog caches reads per process. Writes made by another process are only seen once
// the entries expire.
type Catalog struct {
	src         Source
	restaurants *expirable.LRU[uint, *models.Restaurant]
	menus       *expirable.LRU[uint, []models.MenuItem]
	lists       *expirable.LRU[store.RestaurantFilter, []models.Restaurant]
}

// New wraps src. A non-positive size or ttl disables caching.
func New(src Source, size int, ttl time.Duration) *Catalog {
	c := &Catalog{src: src}
	if size > 0 && ttl > 0 {
		c.restaurants = expirable.NewLRU[uint, *models.Restaurant](size, nil, ttl)
		c.menus = expirable.NewLRU[uint, []models.MenuItem](size, nil, ttl)
		c.lists = expirable.NewLRU[store.RestaurantFilter, []models.Restaurant](size, nil, ttl)
	}
	return c
}

func (c *Catalog) enabled() bool { return c.restaurants != nil }

// Restaurants returns the filtered restaurant list. Results are shared; do not modify them.
func (c *Catalog) Restaurants(ctx context.Context, f store.RestaurantFilter) ([]models.Restaurant, error) {
	if c.enabled() {
		if list, ok := c.lists.Get(f); ok {
			hit()
			return list, nil
		}
		miss()
	}
	list, err := c.src.ListRestaurants(ctx, f)
	if err != nil {
		return nil, err
	}
	if c.enabled() {
		c.lists.Add(f, list)
	}
	return list, nil
}

// Restaurant returns one restaurant with its full menu.
func (c *Catalog) Restaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	if c.enabled() {
		if r, ok := c.restaurants.Get(id); ok {
			hit()
			return r, nil
		}
		miss()
	}
	r, err := c.src.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.enabled() {
		c.restaurants.Add(id, r)
	}
	return r, nil
}

// Menu returns the restaurant's menu filtered in memory from the cached full menu.
func (c *Catalog) Menu(ctx context.Context, restaurantID uint, f store.MenuFilter) ([]models.MenuItem, error) {
	var full []models.MenuItem
	cached := false
	if c.enabled() {
		full, cached = c.menus.Get(restaurantID)
		if cached {
			hit()
		} else {
			miss()
		}
	}
	if !cached {
		var err error
		full, err = c.src.GetMenuItems(ctx, restaurantID, store.MenuFilter{})
		if err != nil {
			return nil, err
		}
		if c.enabled() {
			c.menus.Add(restaurantID, full)
		}
	}

	out := make([]models.MenuItem, 0, len(full))
	for _, item := range full {
		if f.Category != "" && item.Category != f.Category {
			continue
		}
		if f.AvailableOnly && !item.IsAvailable {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (c *Catalog) UpdateMenuItemPrice(ctx context.Context, id uint, price float64) (*models.MenuItem, error) {
	item, err := c.src.UpdateMenuItemPrice(ctx, id, price)
	if err != nil {
		return nil, err
	}
	c.Invalidate(item.RestaurantID)
	return item, nil
}

func (c *Catalog) SetMenuItemAvailability(ctx context.Context, id uint, available bool) (*models.MenuItem, error) {
	item, err := c.src.SetMenuItemAvailability(ctx, id, available)
	if err != nil {
		return nil, err
	}
	c.Invalidate(item.RestaurantID)
	return item, nil
}

func (c *Catalog) DeleteRestaurant(ctx context.Context, id uint) error {
	if err := c.src.DeleteRestaurant(ctx, id); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	c.Invalidate(id)
	return nil
}

// Invalidate drops the restaurant, its menu and every cached list.
func (c *Catalog) Invalidate(restaurantID uint) {
	if !c.enabled() {
		return
	}
	c.restaurants.Remove(restaurantID)
	c.menus.Remove(restaurantID)
	c.lists.Purge()
}

// Purge empties every cache.
func (c *Catalog) Purge() {
	if !c.enabled() {
		return
	}
	c.restaurants.Purge()
	c.menus.Purge()
	c.lists.Purge()
}

func hit()  { metrics.CacheLookups.WithLabelValues("hit").Inc() }
func miss() { metrics.CacheLookups.WithLabelValues("miss").Inc() }
