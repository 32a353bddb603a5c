package main

import (
	"log"
	"net/http"
	"os"

	_ "tripmate/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tripmate/internal/auth"
	"tripmate/internal/cache"
	"tripmate/internal/config"
	"tripmate/internal/db"
	"tripmate/internal/handler"
	"tripmate/internal/mailer"
	"tripmate/internal/model"
	"tripmate/internal/repository"
	"tripmate/internal/router"
	"tripmate/internal/service"
	"tripmate/internal/social"
)

// @title Tripmate API
// @version 1.0
// @description Trip planning API: create trips, invite Facebook friends, collect place recommendations.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Recommendation{},
			&model.Recommender{},
			&model.Code{},
			&model.Trip{},
			&model.Destination{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Destination{},
		&model.Trip{},
		&model.Code{},
		&model.Recommender{},
		&model.Recommendation{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	destinationRepo := repository.NewDestinationRepository(gormDB)
	tripRepo := repository.NewTripRepository(gormDB)
	codeRepo := repository.NewCodeRepository(gormDB)
	recommenderRepo := repository.NewRecommenderRepository(gormDB)
	recommendationRepo := repository.NewRecommendationRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize collaborators
	graphClient := social.NewGraphClient(cfg.GraphBaseURL, os.Getenv("FB_APP_TOKEN"), cacheClient)
	inviteMailer := mailer.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPFrom)

	// Initialize services
	codeRegistry := service.NewCodeRegistry(codeRepo)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	tripService := service.NewTripService(tripRepo, destinationRepo, codeRegistry)
	inviteService := service.NewInviteService(codeRegistry, userRepo, recommenderRepo, inviteMailer)
	requestService := service.NewRequestService(userRepo, tripRepo, recommenderRepo, graphClient)
	recommendationService := service.NewRecommendationService(tripRepo, recommenderRepo, recommendationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	tripHandler := handler.NewTripHandler(tripService)
	inviteHandler := handler.NewInviteHandler(inviteService)
	requestHandler := handler.NewRequestHandler(requestService)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		tripHandler,
		inviteHandler,
		requestHandler,
		recommendationHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
