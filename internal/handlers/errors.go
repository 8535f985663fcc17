package handlers

import (
	"errors"
	"net/http"

	"shop_admin/internal/models"
	"shop_admin/internal/redis"
	"shop_admin/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP responses. Insufficient stock
// and invalid transitions carry structured fields so the dashboard can show
// a specific message instead of a generic failure alert.
func respondError(c *gin.Context, err error) {
	var stockErr *models.InsufficientStockError
	if errors.As(err, &stockErr) {
		body := gin.H{
			"error":      "insufficient_stock",
			"message":    stockErr.Error(),
			"product_id": stockErr.ProductID,
			"requested":  stockErr.Requested,
			"available":  stockErr.Available,
		}
		if stockErr.VariantID != nil {
			body["variant_id"] = *stockErr.VariantID
		}
		c.JSON(http.StatusConflict, body)
		return
	}

	var transitionErr *models.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "invalid_transition",
			"message": transitionErr.Error(),
			"from":    transitionErr.From,
			"to":      transitionErr.To,
		})
		return
	}

	switch {
	case errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrVariantNotFound),
		errors.Is(err, models.ErrCategoryNotFound),
		errors.Is(err, models.ErrCustomerNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, redis.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrOrderNotEditable),
		errors.Is(err, services.ErrOrderSoldLocked):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrInvalidPrefix),
		errors.Is(err, services.ErrPrefixTaken),
		errors.Is(err, services.ErrZeroDelta),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
