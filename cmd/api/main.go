package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-futurejob-backend/config"
	_ "go-futurejob-backend/docs" // Important for Swagger
	v1 "go-futurejob-backend/internal/delivery/http/v1"
	"go-futurejob-backend/internal/domain"
	"go-futurejob-backend/internal/repository/jsonfile"
	"go-futurejob-backend/internal/repository/sqlite"
	"go-futurejob-backend/internal/usecase"
	"go-futurejob-backend/pkg/auth"
	"go-futurejob-backend/pkg/database"
	"go-futurejob-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// @title           Future Job Tracker API
// @version         1.0
// @description     Backend for the future job tracker questionnaire app using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting future job tracker backend", "port", cfg.Port, "storage", cfg.StorageDriver)

	// 3. Setup User Store
	var userRepo domain.UserRepository
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		db, err := database.NewSQLiteConnection(cfg.SQLitePath)
		if err != nil {
			logger.Log.Error("Failed to open sqlite store", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		userRepo = sqlite.NewUserRepository(db)
	default:
		userRepo = jsonfile.NewUserRepository(cfg.UsersFile)
	}

	// 4. Setup UseCases
	validate := validator.New()
	careerUC := usecase.NewCareerUsecase()
	authUC := usecase.NewAuthUsecase(userRepo, validate)
	profileUC := usecase.NewProfileUsecase(userRepo, careerUC)

	// 5. Setup Session Tokens
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:    authUC,
		ProfileUC: profileUC,
		CareerUC:  careerUC,
		Tokens:    tokens,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
