package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"food-delivery-db/catalog"
	"food-delivery-db/models"
	"food-delivery-db/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Store is the subset of the data layer the inspection handlers read from.
type Store interface {
	Counts(ctx context.Context) (map[string]int64, error)
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	GetOrderItems(ctx context.Context, orderID uint) ([]models.OrderItem, error)
	GetRestaurantReviews(ctx context.Context, restaurantID uint) ([]models.Review, error)
	ListDeliveryPersonnel(ctx context.Context, availableOnly bool) ([]models.DeliveryPersonnel, error)
}

// Handler serves the read-only inspection endpoints.
type Handler struct {
	DB       *gorm.DB
	Store    Store
	Catalog  *catalog.Catalog
	Currency string
}

func respondError(c *gin.Context, err error) {
	code := store.Code(err)
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrInvalidInput), errors.Is(err, store.ErrInvalidStatus):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}

// idParam parses a positive numeric path parameter; it writes the 400 itself on failure.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": " + c.Param(name), "code": "VALIDATION_ERROR"})
		return 0, false
	}
	return uint(id), true
}
