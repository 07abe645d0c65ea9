package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens (once) the GORM connection using the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.CandidateProfile{},
		&models.Company{},
		&models.RecruiterProfile{},
		&models.Job{},
		&models.Application{},
		&models.DirectMessage{},
		&models.Interview{},
		&models.Swipe{},
		&models.InterestSignal{},
		&models.CandidateEvaluation{},
		&models.ApplicationRanking{},
		&models.CandidateSignal{},
		&models.RecruiterSignal{},
	)
}
