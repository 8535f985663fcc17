package main

import (
	"shop_admin/internal/config"
	"shop_admin/internal/database"
	"shop_admin/internal/migrations"
	"shop_admin/internal/models"
	"shop_admin/internal/repository"
	"shop_admin/internal/services"

	"github.com/sirupsen/logrus"
)

// Standalone seeder: creates the schema, the demo admin, starter categories
// and a handful of demo products so the dashboard has something to show.
func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	if err := migrations.RunMigrations(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	uow := repository.NewUnitOfWork(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productService := services.NewProductService(uow, productRepo)
	customerService := services.NewCustomerService(customerRepo)

	categories, err := categoryRepo.GetAll()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load categories")
	}
	if len(categories) == 0 {
		logrus.Fatal("No categories seeded, nothing to attach demo products to")
	}

	existing, err := productRepo.GetAll()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load products")
	}
	if len(existing) > 0 {
		logrus.Info("Demo products already exist, skipping")
		return
	}

	demo := []struct {
		name  string
		price float64
		stock int
	}{
		{"Classic Runner", 79.90, 25},
		{"Trail Boot", 129.00, 12},
		{"Canvas Slip-On", 49.50, 40},
	}
	for _, d := range demo {
		product, err := productService.CreateProduct(d.name, "", d.price, d.stock, categories[0].ID)
		if err != nil {
			logrus.WithError(err).WithField("product", d.name).Warn("Failed to seed product")
			continue
		}
		logrus.WithFields(logrus.Fields{
			"code": product.Code,
			"name": product.Name,
		}).Info("Seeded product")
	}

	if err := customerService.CreateCustomer(&models.Customer{
		Name:  "Walk-in Customer",
		Phone: "000",
	}); err != nil {
		logrus.WithError(err).Warn("Failed to seed walk-in customer")
	}

	logrus.Info("Database initialized")
}
