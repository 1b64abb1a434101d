package handlers

import (
	"net/http"

	"food-delivery-db/database"
	"food-delivery-db/models"

	"github.com/gin-gonic/gin"
)

// GetSchema describes every table as the database reports it.
func (h *Handler) GetSchema(c *gin.Context) {
	tables, err := database.Describe(c.Request.Context(), h.DB)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"database": h.DB.Migrator().CurrentDatabase(),
		"count":    len(tables),
		"tables":   tables,
	})
}

// GetStats returns row counts per table
func (h *Handler) GetStats(c *gin.Context) {
	counts, err := h.Store.Counts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": counts})
}

// GetEnums lists the accepted order and payment status values.
func (h *Handler) GetEnums(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"order_status":    models.OrderStatuses(),
		"payment_status":  models.PaymentStatuses(),
		"terminal_states": []models.OrderStatus{models.StatusDelivered, models.StatusCancelled},
		"description":     "Enumeration columns of the orders table",
	})
}
