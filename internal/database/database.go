package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/chizhinime/brand-pawa-sub000/internal/config"
	"github.com/chizhinime/brand-pawa-sub000/internal/logger"
	"github.com/chizhinime/brand-pawa-sub000/internal/models"
)

func Connect(cfg *config.Config, log *logger.Logger) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}

	log.Info("database connected", "host", cfg.DBHost, "db", cfg.DBName)
	return db
}

func AutoMigrate(db *gorm.DB, log *logger.Logger) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Diagnostic{},
		&models.DiagnosticQuestion{},
		&models.QuestionOption{},
		&models.Pillar{},
		&models.DiagnosticProgress{},
		&models.DiagnosticResult{},
		&models.Challenge{},
		&models.ChallengeDuration{},
		&models.ChallengeTask{},
		&models.ChallengeEnrollment{},
		&models.ActivityEvent{},
	)
	if err != nil {
		log.Fatal("migration failed", "error", err)
	}
}
