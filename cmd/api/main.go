package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/projectzeus/checkin-backend/api/routes"
	"github.com/projectzeus/checkin-backend/internal/config"
	"github.com/projectzeus/checkin-backend/internal/handlers"
	"github.com/projectzeus/checkin-backend/internal/repositories"
	mongorepo "github.com/projectzeus/checkin-backend/internal/repositories/mongodb"
	"github.com/projectzeus/checkin-backend/internal/services"
	"github.com/projectzeus/checkin-backend/internal/utils"
	"github.com/projectzeus/checkin-backend/pkg/fitnessapi"
	"github.com/projectzeus/checkin-backend/pkg/logger"
	"github.com/projectzeus/checkin-backend/pkg/mongodb"
	"github.com/projectzeus/checkin-backend/pkg/peopleapi"
)

func main() {
	// Load .env before viper reads the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Connect to MongoDB
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		zlog.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			zlog.Error("Error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Initialize repositories
	var userRepo repositories.UserRepository = mongorepo.NewUserRepository(db)
	var adminRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)
	var tokenRepo repositories.TokenRepository = mongorepo.NewTokenRepository(db)

	// Initialize Google collaborators
	oauthService := services.NewOAuthService(cfg, tokenRepo, zlog)

	loc, err := time.LoadLocation(cfg.Bot.Timezone)
	if err != nil {
		zlog.Fatal("Invalid bot timezone", zap.String("timezone", cfg.Bot.Timezone), zap.Error(err))
	}

	var contacts peopleapi.Client
	var fitness fitnessapi.Client
	if cfg.Google.MockAPIs {
		contacts = peopleapi.NewMockClient()
		fitness = fitnessapi.NewMockClient()
	} else {
		contacts = peopleapi.NewGoogleClient(oauthService)
		fitness = fitnessapi.NewGoogleClient(oauthService, loc)
	}

	// Initialize services. Registration and check-in share one keyed mutex
	// so all mutations for an identifier are serialized.
	locks := utils.NewKeyedMutex()
	registrationService := services.NewRegistrationService(userRepo, contacts, locks, cfg, zlog)
	checkinService, err := services.NewCheckinService(userRepo, fitness, locks, cfg, zlog)
	if err != nil {
		zlog.Fatal("Failed to initialize check-in service", zap.Error(err))
	}
	userService := services.NewUserService(userRepo, cfg)
	milestoneService, err := services.NewMilestoneService(userRepo, cfg)
	if err != nil {
		zlog.Fatal("Failed to initialize milestone service", zap.Error(err))
	}
	leaderboardService := services.NewLeaderboardService(userRepo)
	authService := services.NewAuthService(adminRepo, cfg)

	// Initialize handlers
	deps := routes.HandlerDependencies{
		WebhookHandler: handlers.NewWebhookHandler(
			registrationService,
			checkinService,
			userService,
			milestoneService,
			leaderboardService,
			cfg.Bot.LeaderboardSize,
			zlog,
		),
		AuthHandler:  handlers.NewAuthHandler(authService),
		AdminHandler: handlers.NewAdminHandler(userService, milestoneService),
		OAuthHandler: handlers.NewOAuthHandler(oauthService, zlog),
	}

	router := routes.SetupRouter(cfg, zlog, deps)

	port := config.GetEnv("PORT", cfg.Server.Port)
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	zlog.Info("Server starting", zap.String("port", port))

	// Run server in a goroutine so that it doesn't block
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("listen failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exiting")
}
