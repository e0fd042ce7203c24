package main

import (
	"uxmetrics/internal/config"
	"uxmetrics/internal/database"
	logger "uxmetrics/internal/logging"
	"uxmetrics/internal/models"
	"uxmetrics/internal/router"
	"uxmetrics/internal/services"

	"go.uber.org/zap"
)

func main() {
	// Bootstrap logger so configuration loading has somewhere to report.
	log, err := logger.Init(logger.DefaultOptions())
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	// Initialize configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Rebuild the logger with the configured rotation settings.
	logConf := config.Conf.Logging
	configured, err := logger.Init(logger.Options{
		Directory:  logConf.Directory,
		MaxSize:    logConf.MaxSize,
		MaxBackups: logConf.MaxBackups,
		MaxAge:     logConf.MaxAge,
		Compress:   logConf.Compress,
	})
	if err != nil {
		log.Fatal("Failed to initialize configured logger", zap.Error(err))
	}
	log = configured
	defer log.Sync()

	// Initialize Database
	database.Init(log)

	// Load the study definition at startup
	study, err := models.LoadStudy(config.Conf.Study.Definition)
	if err != nil {
		log.Fatal("Failed to load study definition", zap.Error(err))
	}
	log.Info("Study loaded", zap.String("study", study.ID), zap.Int("tasks", len(study.Tasks)))

	// Start the daily snapshot scheduler
	scheduler := services.NewScheduler(log, study)
	scheduler.Start()

	// Setup router, passing the logger to it
	r := router.Setup(log, study)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
