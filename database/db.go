package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/akkaungkyawkhaing/dream-lands/models"
)

var GORM_DB *gorm.DB

func InitDB(connStr string) {
	var err error
	GORM_DB, err = gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	Migrate(GORM_DB)

	sqlDB, err := GORM_DB.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying *sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Connected to PostgreSQL database")
}

// Migrate creates the post, user and comment tables if they are absent.
// Also used by tests to prepare an in-memory database.
func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(&models.Post{}, &models.User{}, &models.Comment{})
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func CloseDB() {
	if GORM_DB != nil {
		sqlDB, err := GORM_DB.DB()
		if err != nil {
			log.Printf("Error getting underlying *sql.DB to close: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}
}
