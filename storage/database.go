package storage

import (
	"log"
	"os"

	"staynest-server/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required")
	}

	// TranslateError turns driver unique/FK failures into gorm sentinel
	// errors so handlers can classify them.
	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if dbError != nil {
		log.Panic("error connection to db: " + dbError.Error())
	}

	DB = db
	return db
}

func performMigrations(db *gorm.DB) {
	// Explicit join table so the property<->amenity pair carries a composite
	// primary key instead of a surrogate one.
	if err := db.SetupJoinTable(&models.Property{}, "Amenities", &models.PropertyAmenity{}); err != nil {
		log.Panic("error setting up property_amenities join table: " + err.Error())
	}

	// Leaves first, then everything that references them.
	err := db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.PropertyType{},
		&models.Amenity{},
		&models.Property{},
		&models.PropertyAmenity{},
		&models.Booking{},
		&models.PaymentMethod{},
		&models.Payment{},
		&models.Review{},
		&models.Message{},
	)
	if err != nil {
		log.Panic("error running migrations: " + err.Error())
	}
}

func InitializeDB() *gorm.DB {
	db := connectToDB()
	performMigrations(db)
	return db
}
