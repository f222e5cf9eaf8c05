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

	"jewelry-storefront/internal/auth"
	"jewelry-storefront/internal/cart"
	"jewelry-storefront/internal/client"
	"jewelry-storefront/internal/config"
	"jewelry-storefront/internal/handler"
	"jewelry-storefront/internal/kv"
	"jewelry-storefront/internal/middleware"
	"jewelry-storefront/internal/repository"
	"jewelry-storefront/internal/server"
	"jewelry-storefront/internal/service"
	"jewelry-storefront/internal/storage"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db := client.InitSqliteClient(cfg.DatabaseURL)
	rdb := client.InitRedisClient(cfg.RedisAddr)
	firebaseAuth := client.InitFirebaseAuth(ctx, &cfg.Firebase)
	gcs := client.InitStorageClient(ctx, cfg.Firebase.CredentialsFile)

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	if err := productRepo.Seed(ctx); err != nil {
		log.Fatal("failed to seed products:", err)
	}

	store := kv.NewRedisStore(rdb)
	snapshots := cart.NewKVSnapshots(store)
	shipping := service.NewShippingStore(store)

	provider := auth.NewFirebaseProvider(firebaseAuth)
	uploader := storage.NewUploader(gcs, cfg.Storage.Bucket, cfg.Storage.Folder)

	productService := service.NewProductService(productRepo, uploader)
	orderService := service.NewOrderService(orderRepo, shipping)

	sessionGate := middleware.NewSessionGate(provider, roleRepo)

	srv := server.NewServer(
		sessionGate,
		handler.NewCatalogHandler(productService),
		handler.NewCartHandler(productRepo, snapshots),
		handler.NewOrderHandler(orderService, shipping, snapshots),
		handler.NewSessionHandler(provider, roleRepo, snapshots),
		handler.NewAdminHandler(productService, orderService, roleRepo),
		handler.NewMediaHandler(uploader),
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
