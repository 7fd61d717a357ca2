package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"grocerly/docs"
	"grocerly/internal/auth"
	"grocerly/internal/cache"
	"grocerly/internal/config"
	"grocerly/internal/db"
	"grocerly/internal/handler"
	"grocerly/internal/model"
	"grocerly/internal/repository"
	"grocerly/internal/router"
	"grocerly/internal/service"
)

// @title Grocerly API
// @version 1.0
// @description Grocery ordering API with session authentication, a catalog, a per-user cart, and an order lifecycle.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey SessionAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token (or rely on the session cookie).
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.UserSession{},
		&model.Item{},
		&model.Category{},
		&model.Cart{},
		&model.Order{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)

	// Initialize auth components
	sessionStore := auth.NewSessionStore(sessionRepo, cacheClient)
	authenticator := auth.NewAuthenticator(sessionStore, userRepo)
	oauthClient := auth.NewOAuthClient(cfg.OAuthBaseURL)

	// Initialize services
	authService := service.NewAuthService(oauthClient, userRepo, sessionStore, cfg)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(itemRepo, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo, itemRepo)
	cartService := service.NewCartService(cartRepo)
	orderService := service.NewOrderService(orderRepo)

	// Default categories must exist before the first catalog read
	if err := categoryService.SeedDefaults(context.Background()); err != nil {
		log.Fatalf("seed default categories: %v", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	itemHandler := handler.NewItemHandler(catalogService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	seedHandler := handler.NewSeedHandler(catalogService)

	// Register routes
	router.Register(
		e,
		cfg,
		authenticator,
		authHandler,
		userHandler,
		itemHandler,
		categoryHandler,
		cartHandler,
		orderHandler,
		seedHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
