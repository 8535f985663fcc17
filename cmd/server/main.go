package main

import (
	"time"

	"shop_admin/internal/config"
	"shop_admin/internal/database"
	"shop_admin/internal/handlers"
	"shop_admin/internal/migrations"
	"shop_admin/internal/redis"
	"shop_admin/internal/repository"
	"shop_admin/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	if err := migrations.RunMigrations(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logrus.WithError(err).Fatal("Failed to migrate database")
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to Redis")
	}

	// Initialize repositories
	uow := repository.NewUnitOfWork(db)
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	customerService := services.NewCustomerService(customerRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(uow, productRepo)
	orderService := services.NewOrderService(uow, orderRepo)
	inventoryService := services.NewInventoryService(uow, productRepo, inventoryRepo)
	dashboardService := services.NewDashboardService(orderRepo, redisClient, time.Duration(cfg.CacheTTL)*time.Second)
	assistantService := services.NewAssistantService(redisClient, productService, customerService, orderService, time.Duration(cfg.SessionTimeout)*time.Second)

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(userService, customerService)
	catalogHandler := handlers.NewCatalogHandler(categoryService, productService, inventoryService)
	orderHandler := handlers.NewOrderHandler(orderService, dashboardService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/auth/login", apiHandler.Login)

		api.POST("/categories", catalogHandler.CreateCategory)
		api.GET("/categories", catalogHandler.ListCategories)
		api.GET("/categories/:id", catalogHandler.GetCategory)
		api.PUT("/categories/:id", catalogHandler.UpdateCategory)
		api.DELETE("/categories/:id", catalogHandler.DeleteCategory)

		api.POST("/products", catalogHandler.CreateProduct)
		api.GET("/products", catalogHandler.ListProducts)
		api.GET("/products/:id", catalogHandler.GetProduct)
		api.PUT("/products/:id", catalogHandler.UpdateProduct)
		api.DELETE("/products/:id", catalogHandler.DeleteProduct)
		api.POST("/products/:id/variants", catalogHandler.CreateVariant)
		api.GET("/products/:id/variants", catalogHandler.ListVariants)
		api.DELETE("/variants/:variant_id", catalogHandler.DeleteVariant)
		api.GET("/products/:id/movements", catalogHandler.ProductMovements)

		api.POST("/inventory/adjust", catalogHandler.AdjustStock)
		api.GET("/inventory/low-stock", catalogHandler.LowStock)

		api.POST("/customers", apiHandler.CreateCustomer)
		api.GET("/customers", apiHandler.ListCustomers)
		api.GET("/customers/:id", apiHandler.GetCustomer)
		api.PUT("/customers/:id", apiHandler.UpdateCustomer)
		api.DELETE("/customers/:id", apiHandler.DeleteCustomer)

		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders", orderHandler.ListOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.DELETE("/orders/:id", orderHandler.DeleteOrder)
		api.POST("/orders/:id/items", orderHandler.AddItem)
		api.DELETE("/orders/:id/items/:item_id", orderHandler.RemoveItem)
		api.POST("/orders/:id/transition", orderHandler.Transition)

		api.GET("/dashboard/summary", orderHandler.DashboardSummary)

		api.POST("/assistant/sessions", assistantHandler.StartSession)
		api.GET("/assistant/sessions/:session_id", assistantHandler.GetSession)
		api.POST("/assistant/sessions/:session_id/items", assistantHandler.AddToCart)
		api.POST("/assistant/sessions/:session_id/submit", assistantHandler.Submit)
		api.DELETE("/assistant/sessions/:session_id", assistantHandler.EndSession)
	}

	// Start server
	logrus.WithField("port", cfg.ServerPort).Info("Server starting")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
