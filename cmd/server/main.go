package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"after-school-api/config"
	"after-school-api/database"
	"after-school-api/handlers"
	"after-school-api/router"
	"after-school-api/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongo connect failed", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("mongo disconnect failed", zap.Error(err))
		}
	}()

	db := client.Database(cfg.Database)
	lessonStore := database.NewMongoLessonStore(db)
	orderStore := database.NewMongoOrderStore(db)

	app := router.New(router.Handlers{
		Lessons: handlers.NewLessonHandler(
			service.NewQueryService(lessonStore),
			service.NewLessonService(lessonStore),
			logger),
		Orders: handlers.NewOrderHandler(
			service.NewOrderService(orderStore, lessonStore, logger),
			logger),
		Images: handlers.NewImageHandler(cfg.ImagesDir),
	}, logger)

	go func() {
		logger.Info("http server listening", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
