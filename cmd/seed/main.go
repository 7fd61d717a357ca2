// Command seed populates an empty database with the default categories
// and the sample catalog, for local development and demos.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"grocerly/internal/cache"
	"grocerly/internal/config"
	"grocerly/internal/db"
	"grocerly/internal/model"
	"grocerly/internal/repository"
	"grocerly/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

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

	itemRepo := repository.NewItemRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	categoryService := service.NewCategoryService(categoryRepo, itemRepo)
	catalogService := service.NewCatalogService(itemRepo, cacheClient)

	ctx := context.Background()
	if err := categoryService.SeedDefaults(ctx); err != nil {
		log.Fatalf("seed default categories: %v", err)
	}
	log.Printf("default categories in place: %v", model.DefaultCategories)

	count, err := catalogService.SeedItems(ctx)
	if err != nil {
		log.Fatalf("seed items: %v", err)
	}
	if count == 0 {
		log.Println("items already present, nothing to seed")
		return
	}
	log.Printf("seeded %d sample items", count)
}
