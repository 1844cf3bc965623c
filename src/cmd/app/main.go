package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitchen-service/src/internal/config"
	"kitchen-service/src/pkg/log"
)

func main() {

	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "KITCHEN_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	log.InitLogger(viperConfig)
	logger := log.GetLogger()
	config.NewKafkaConfig(viperConfig)
	config.LoadRedisConfig(viperConfig, logger)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis(viperConfig)
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	config.Bootstrap(&config.BootstrapConfig{
		DB:       db,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
		Redis:    redisClient,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	webPort := viperConfig.GetInt("web.port")
	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
			quit <- os.Interrupt
		}
	}()

	<-quit
	logger.Info("main", "Server kitchen-service is shutting down...", "graceful", "")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("main", fmt.Sprintf("Error closing producer: %v", err), "graceful", "")
		}
	}

	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
