package database

import (
	"fmt"

	"uxmetrics/internal/config"
	logging "uxmetrics/internal/logging"
	"uxmetrics/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	// Route GORM's own logging through zap
	gormLogger := logging.NewGormZapLogger(log)
	gormLogger.LogLevel = logger.Warn

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate will create tables, columns, and foreign keys.
	// It will NOT create custom indexes, so we handle that separately.
	err := DB.AutoMigrate(
		&models.Session{},
		&models.Observation{},
		&models.ObservationMetric{},
		&models.Report{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	metricsIndex := `CREATE INDEX IF NOT EXISTS idx_observation_metrics_query ON observation_metrics (observation_id, task_id, metric_key, created_at DESC);`
	if err := DB.Exec(metricsIndex).Error; err != nil {
		log.Fatal("Failed to create custom index on metrics table", zap.Error(err))
	}
	log.Info("Custom indexes ensured successfully.")
}
