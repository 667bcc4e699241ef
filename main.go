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

	"grandvista-backend/config"
	"grandvista-backend/controllers"
	"grandvista-backend/routes"
	"grandvista-backend/services"
	"grandvista-backend/store"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// Pick the store driver: in-memory by default, MySQL for durable state.
	var stores *store.Stores
	switch driver := config.StoreDriver(); driver {
	case config.DriverMySQL:
		db, err := config.ConnectDatabase()
		if err != nil {
			log.Fatalf("Database connect failed: %v", err)
		}
		stores = store.NewMySQLStores(db)
		log.Println("Database connection established and migrations applied")
	case config.DriverMemory:
		stores = store.NewMemStores()
		log.Println("Using in-memory store")
	default:
		log.Fatalf("Unknown STORE_DRIVER %q (want %q or %q)", driver, config.DriverMemory, config.DriverMySQL)
	}

	if config.SeedEnabled() {
		if err := store.Seed(stores); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}

	// Initialize services
	roomService := services.NewRoomService(stores.Rooms)
	bookingService := services.NewBookingService(stores.Bookings, stores.Rooms)
	userService := services.NewUserService(stores.Users)
	messageService := services.NewMessageService(stores.Messages)
	adminService := services.NewAdminService(roomService, bookingService, userService, messageService)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	authController := controllers.NewAuthController(userService)
	userController := controllers.NewUserController(userService)
	messageController := controllers.NewMessageController(messageService)
	adminController := controllers.NewAdminController(adminService)

	// Build router
	router := routes.SetupRouter(
		roomController,
		bookingController,
		authController,
		userController,
		messageController,
		adminController,
	)

	// Port from env (prefer), fallback to 8080
	port := config.EnvOrDefault("PORT", "8080")
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
