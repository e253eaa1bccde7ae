package main

import (
	"context"
	"log"
	"net/http"

	"chocoshop-be/internal/catalog"
	"chocoshop-be/internal/config"
	"chocoshop-be/internal/db"
	"chocoshop-be/internal/httpapi"
	"chocoshop-be/internal/logger"
	"chocoshop-be/internal/order"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	if err := db.Bootstrap(context.Background(), database); err != nil {
		log.Fatalf("Failed to bootstrap schema: %v", err)
	}

	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(catalogSvc, orderRepo)

	handler := httpapi.NewHandler(catalogSvc, orderSvc, cfg.StaticDir)
	router := httpapi.NewRouter(handler)

	log.Printf("🚀 Server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
