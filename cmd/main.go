package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/authstack/auth-service/internal/auth"
	"github.com/authstack/auth-service/internal/config"
	"github.com/authstack/auth-service/internal/handler"
	"github.com/authstack/auth-service/internal/mailer"
	"github.com/authstack/auth-service/internal/middleware"
	"github.com/authstack/auth-service/internal/repository"
	"github.com/authstack/auth-service/internal/router"
	"github.com/authstack/auth-service/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Connect to MongoDB
	mongoClient, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err = mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("Failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	db := mongoClient.Database(cfg.MongoDatabase)

	userRepo := repository.NewUserRepository(db, logger)

	// Prefer the MailerSend API when a key is configured, fall back to SMTP.
	var mailService mailer.Mailer
	if cfg.MailerSendAPIKey != "" {
		mailService = mailer.NewMailerSendService(cfg.MailerSendAPIKey, cfg.SenderEmail, cfg.SenderName, logger)
	} else {
		mailService = mailer.NewSMTPMailerService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SenderEmail, cfg.SenderName, logger)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	authUsecase := usecase.NewAuthUsecase(userRepo, mailService)
	authHandler := handler.NewAuthHandler(authUsecase, tokens, cfg, logger)

	r := chi.NewRouter()
	r.Use(middleware.Logger(logger))
	router.SetupAuthRoutes(r, authHandler, tokens)

	httpServerAddr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting Auth Service HTTP server", zap.String("address", httpServerAddr))
	if err := http.ListenAndServe(httpServerAddr, r); err != nil {
		logger.Fatal("Failed to start HTTP server", zap.Error(err))
	}
}
