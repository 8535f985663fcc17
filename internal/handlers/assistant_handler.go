package handlers

import (
	"net/http"

	"shop_admin/internal/redis"
	"shop_admin/internal/services"

	"github.com/gin-gonic/gin"
)

// AssistantHandler exposes the shopping assistant's cart session endpoints.
// The chat frontend drives these; the conversation itself never reaches
// this service.
type AssistantHandler struct {
	assistantService services.AssistantService
}

func NewAssistantHandler(assistantService services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

func (h *AssistantHandler) StartSession(c *gin.Context) {
	var req struct {
		CustomerPhone string `json:"customer_phone" binding:"required"`
		CustomerName  string `json:"customer_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session, err := h.assistantService.StartSession(req.CustomerPhone, req.CustomerName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *AssistantHandler) GetSession(c *gin.Context) {
	session, err := h.assistantService.GetSession(c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *AssistantHandler) AddToCart(c *gin.Context) {
	var req struct {
		ProductID uint  `json:"product_id" binding:"required"`
		VariantID *uint `json:"variant_id"`
		Quantity  int   `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session, err := h.assistantService.AddToCart(c.Param("session_id"), redis.CartItem{
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Submit turns the cart into a pending order and closes the session.
func (h *AssistantHandler) Submit(c *gin.Context) {
	order, err := h.assistantService.Submit(c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *AssistantHandler) EndSession(c *gin.Context) {
	if err := h.assistantService.EndSession(c.Param("session_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ended"})
}
