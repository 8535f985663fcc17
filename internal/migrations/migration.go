package migrations

import (
	"errors"

	"shop_admin/internal/models"
	"shop_admin/internal/repository"
	"shop_admin/internal/services"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RunMigrations creates the schema and seeds default data: the demo admin
// account and a couple of starter categories with code prefixes.
func RunMigrations(db *gorm.DB, adminUsername, adminPassword string) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Order{},
		&models.OrderItem{},
		&models.StockMovement{},
	)
	if err != nil {
		return err
	}

	if err := seedDefaultData(db, adminUsername, adminPassword); err != nil {
		logrus.WithError(err).Warn("Failed to create default data")
	}

	logrus.Info("Database migrations completed successfully!")
	return nil
}

func seedDefaultData(db *gorm.DB, adminUsername, adminPassword string) error {
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)
	categoryRepo := repository.NewCategoryRepository(db)

	_, err := userService.GetUserByUsername(adminUsername)
	if err == nil {
		logrus.Info("Demo admin user already exists")
		return nil
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return err
	}

	logrus.Info("Creating demo admin user...")
	admin := &models.User{
		Username: adminUsername,
		Email:    adminUsername + "@example.com",
		Role:     string(models.RoleAdmin),
		IsActive: true,
	}
	if err := userService.CreateUser(admin, adminPassword); err != nil {
		return err
	}
	logrus.WithField("username", adminUsername).Info("Demo admin user created")

	logrus.Info("Creating starter categories...")
	categories := []models.Category{
		{Name: "Shoes", Prefix: "A"},
		{Name: "Apparel", Prefix: "B"},
		{Name: "Accessories", Prefix: "C"},
	}
	for i := range categories {
		if err := categoryRepo.Create(&categories[i]); err != nil {
			logrus.WithError(err).WithField("category", categories[i].Name).Warn("Failed to seed category")
		}
	}

	logrus.Info("Default data created successfully!")
	return nil
}
