package database

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/janipakwan/pakwan-api/internal/config"
	"github.com/janipakwan/pakwan-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Customer{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Payment{},
		&entity.Expense{},
		&entity.Party{},
		&entity.PartyPayment{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the admin user (from ADMIN_EMAIL/ADMIN_PASSWORD) and
// a starter menu catalog when the tables are empty.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")

	if adminEmail != "" && adminPassword != "" {
		var existing entity.User
		if err := db.Where("email = ?", adminEmail).First(&existing).Error; err != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				admin := entity.User{Email: adminEmail, PasswordHash: string(hashed)}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminEmail)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	var menuCount int64
	if err := db.Model(&entity.MenuItem{}).Count(&menuCount).Error; err != nil {
		return fmt.Errorf("failed to count menu items: %w", err)
	}
	if menuCount == 0 {
		items := []entity.MenuItem{
			{Name: "Chicken Biryani", Price: 35000},
			{Name: "Mutton Qorma", Price: 60000},
			{Name: "Chicken Karahi", Price: 55000},
			{Name: "Beef Pulao", Price: 40000},
			{Name: "Seekh Kabab", Price: 25000},
			{Name: "Naan", Price: 2500},
			{Name: "Zarda", Price: 20000},
			{Name: "Kheer", Price: 18000},
		}
		if err := db.Create(&items).Error; err != nil {
			log.Printf("Warning: failed to seed menu items: %v", err)
		} else {
			log.Printf("Seeded %d menu items", len(items))
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
