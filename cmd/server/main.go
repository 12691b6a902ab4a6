package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"quest-ring.backend/internal/config"
	"quest-ring.backend/internal/infrastructure/jobs"
	"quest-ring.backend/internal/infrastructure/repositories"
	"quest-ring.backend/internal/interfaces/http/handlers"
	"quest-ring.backend/internal/interfaces/http/middleware"
	"quest-ring.backend/internal/usecases"
	"quest-ring.backend/pkg/jwt"
	"quest-ring.backend/pkg/logger"
	"quest-ring.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			TranslateError: true,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	questRepo := repositories.NewQuestRepository(db)
	progressRepo := repositories.NewProgressRepository(db)
	leaderboardRepo := repositories.NewLeaderboardRepository(db)
	badgeRepo := repositories.NewBadgeRepository(db)

	// Initialize leaderboard cache
	leaderboardCache := redis.NewLeaderboardCache(cfg.Leaderboard.CacheTTL)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, cfg.Game.PlaySolAirdropAmount)
	questUsecase := usecases.NewQuestUsecase(questRepo, progressRepo, userRepo)
	leaderboardUsecase := usecases.NewLeaderboardUsecase(leaderboardRepo, userRepo, progressRepo, badgeRepo, leaderboardCache, cfg.Leaderboard.DefaultLimit)
	profileUsecase := usecases.NewProfileUsecase(userRepo, progressRepo, badgeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	questHandler := handlers.NewQuestHandler(questUsecase)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardUsecase, cfg.Leaderboard.DefaultLimit)
	profileHandler := handlers.NewProfileHandler(profileUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refreshJob := jobs.NewLeaderboardRefreshJob(leaderboardUsecase, cfg.Leaderboard.RefreshInterval)
	if err := refreshJob.Start(ctx); err != nil {
		logger.Error(ctx, "Failed to start leaderboard refresh job", zap.Error(err))
	}

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:        authHandler,
		questHandler:       questHandler,
		leaderboardHandler: leaderboardHandler,
		profileHandler:     profileHandler,
		authMiddleware:     middleware.AuthMiddleware(jwtService),
		optionalAuth:       middleware.OptionalAuthMiddleware(jwtService),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		refreshJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Quest Ring Backend starting on port %s", cfg.Server.Port)
	log.Printf("📡 Health check: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
