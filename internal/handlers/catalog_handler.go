package handlers

import (
	"net/http"
	"strconv"

	"shop_admin/internal/models"
	"shop_admin/internal/services"

	"github.com/gin-gonic/gin"
)

// CatalogHandler covers categories, products, variants and the manual side
// of inventory (restock, corrections, movement history).
type CatalogHandler struct {
	categoryService  services.CategoryService
	productService   services.ProductService
	inventoryService services.InventoryService
}

func NewCatalogHandler(
	categoryService services.CategoryService,
	productService services.ProductService,
	inventoryService services.InventoryService,
) *CatalogHandler {
	return &CatalogHandler{
		categoryService:  categoryService,
		productService:   productService,
		inventoryService: inventoryService,
	}
}

// Categories

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Name   string `json:"name" binding:"required"`
		Prefix string `json:"prefix" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name, req.Prefix)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAllCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	category, err := h.categoryService.GetCategoryByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// UpdateCategory renames the category and/or its prefix. Existing product
// codes keep the old prefix; only new products pick up the change.
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	var req struct {
		Name   string `json:"name" binding:"required"`
		Prefix string `json:"prefix" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	category, err := h.categoryService.UpdateCategory(id, req.Name, req.Prefix)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Products

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		StockQty    int     `json:"stock_qty"`
		CategoryID  uint    `json:"category_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := h.productService.CreateProduct(req.Name, req.Description, req.Price, req.StockQty, req.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	if rawCategory := c.Query("category_id"); rawCategory != "" {
		categoryID, err := parseID(rawCategory)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}
		products, err := h.productService.GetProductsByCategory(categoryID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
		return
	}

	products, err := h.productService.GetAllProducts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := h.productService.GetProductByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		CategoryID  uint    `json:"category_id" binding:"required"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product := &models.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		IsActive:    true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := h.productService.UpdateProduct(product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Variants

func (h *CatalogHandler) CreateVariant(c *gin.Context) {
	productID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req struct {
		Name     string  `json:"name" binding:"required"`
		Price    float64 `json:"price"`
		StockQty int     `json:"stock_qty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	variant, err := h.productService.CreateVariant(productID, req.Name, req.Price, req.StockQty)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, variant)
}

func (h *CatalogHandler) ListVariants(c *gin.Context) {
	productID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	variants, err := h.productService.GetVariantsByProduct(productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, variants)
}

func (h *CatalogHandler) DeleteVariant(c *gin.Context) {
	id, err := parseID(c.Param("variant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid variant id"})
		return
	}

	if err := h.productService.DeleteVariant(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Inventory

func (h *CatalogHandler) AdjustStock(c *gin.Context) {
	var req struct {
		ProductID uint   `json:"product_id"`
		VariantID *uint  `json:"variant_id"`
		Delta     int    `json:"delta" binding:"required"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	reason := models.MovementReason(req.Reason)
	if reason == "" {
		reason = models.MovementManual
	}

	var newQty int
	var err error
	if req.VariantID != nil {
		newQty, err = h.inventoryService.AdjustVariant(*req.VariantID, req.Delta, reason)
	} else if req.ProductID != 0 {
		newQty, err = h.inventoryService.AdjustProduct(req.ProductID, req.Delta, reason)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either product_id or variant_id is required"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stock_qty": newQty})
}

func (h *CatalogHandler) LowStock(c *gin.Context) {
	threshold := 5
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid threshold"})
			return
		}
		threshold = parsed
	}

	products, err := h.inventoryService.GetLowStock(threshold)
	if err != nil {
		respondError(c, err)
		return
	}
	variants, err := h.inventoryService.GetLowStockVariants(threshold)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "variants": variants})
}

func (h *CatalogHandler) ProductMovements(c *gin.Context) {
	productID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	movements, err := h.inventoryService.GetMovementsByProduct(productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}
