package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartclub/api/internal/config"
	"smartclub/api/internal/handler"
	"smartclub/api/internal/repository"
	"smartclub/api/internal/service"
	"smartclub/api/internal/service/auth"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Database
	ctx := context.Background()
	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	fmt.Println("Connected to database")

	// 3. Setup Logic
	repo := repository.NewStoreRepository(dbPool)

	authSvc := auth.NewService(repo, auth.Config{
		Secret:   cfg.Auth.JWTSecret,
		TokenTTL: cfg.Auth.TokenTTL,
	})
	checkoutSvc := service.NewCheckoutService(repo)
	catalogSvc := service.NewCatalogService(repo)
	orderSvc := service.NewOrderService(repo)

	h := handler.NewHandler(authSvc, checkoutSvc, catalogSvc, orderSvc)

	// 4. Setup Server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 5. Run Server with Graceful Shutdown
	go func() {
		fmt.Printf("Starting server on port %s\n", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("Shutting down server...")

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
