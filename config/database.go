package config

import (
	"errors"
	"os"

	"github.com/studyflash/flashcards-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database pointed at by DB_URL and migrates the schema.
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey regardless of the driver.
func Connect() (*gorm.DB, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("DB_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&models.User{}, &models.StudySet{}, &models.FlashCard{}, &models.AuthToken{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
