package handlers

import (
	"net/http"

	"food-delivery-db/store"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns restaurants, optionally filtered by cuisine, name or active flag.
func (h *Handler) ListRestaurants(c *gin.Context) {
	filter := store.RestaurantFilter{
		Cuisine:    c.Query("cuisine"),
		Search:     c.Query("search"),
		ActiveOnly: c.Query("active") == "true",
	}
	restaurants, err := h.Catalog.Restaurants(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant with its menu
func (h *Handler) GetRestaurant(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	restaurant, err := h.Catalog.Restaurant(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetMenu returns a restaurant's menu, optionally by category or availability
func (h *Handler) GetMenu(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	restaurant, err := h.Catalog.Restaurant(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	items, err := h.Catalog.Menu(ctx, id, store.MenuFilter{
		Category:      c.Query("category"),
		AvailableOnly: c.Query("available") == "true",
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"currency":   h.Currency,
		"count":      len(items),
		"menu":       items,
	})
}

// GetReviews returns a restaurant's reviews, newest first
func (h *Handler) GetReviews(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	reviews, err := h.Store.GetRestaurantReviews(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

// ListDeliveryPersonnel returns couriers, optionally only available ones
func (h *Handler) ListDeliveryPersonnel(c *gin.Context) {
	people, err := h.Store.ListDeliveryPersonnel(c.Request.Context(), c.Query("available") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(people), "delivery_personnel": people})
}

// GetOrder returns an order with named line items and its tracking row.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	order, err := h.Store.GetOrder(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	items, err := h.Store.GetOrderItems(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	order.Items = items

	resp := gin.H{"order": order, "currency": h.Currency}
	if order.Delivery != nil {
		resp["delivery_stage"] = order.Delivery.Stage()
	}
	c.JSON(http.StatusOK, resp)
}
