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

	"hotel-dashboard/config"
	"hotel-dashboard/controllers"
	"hotel-dashboard/routes"
	"hotel-dashboard/seed"
	"hotel-dashboard/services"
	"hotel-dashboard/store"
)

func loadDataset(cfg config.Config) (seed.Dataset, error) {
	embedded, err := seed.Embedded()
	if err != nil {
		return seed.Dataset{}, err
	}
	if cfg.SeedSource != config.SeedSourceMySQL {
		log.Println("✅ Using embedded seed dataset.")
		return embedded, nil
	}

	db, err := config.ConnectSeedDatabase(cfg.MySQLDSN)
	if err != nil {
		return seed.Dataset{}, err
	}
	if sqlDB, err := db.DB(); err == nil {
		// the seed is read once; no need to keep the pool around
		defer sqlDB.Close()
	}
	return seed.LoadFromMySQL(db, embedded)
}

func latencyFor(cfg config.Config, overrides map[store.Op]time.Duration) store.Latency {
	if !cfg.SimulatedLatency {
		return store.NoLatency{}
	}
	return store.NewSimulatedLatency(overrides)
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	dataset, err := loadDataset(cfg)
	if err != nil {
		log.Fatalf("❌ Seed load failed: %v", err)
	}
	log.Printf("✅ Stores seeded: %d guests, %d rooms, %d bookings",
		len(dataset.Guests), len(dataset.Rooms), len(dataset.Bookings))

	ids := store.UUIDGenerator{}

	// Initialize services
	guestService := services.NewGuestService(
		services.NewGuestStore(dataset.Guests),
		latencyFor(cfg, map[store.Op]time.Duration{store.OpGetAll: 250 * time.Millisecond}),
		ids,
	)
	roomService := services.NewRoomService(services.NewRoomStore(dataset.Rooms), latencyFor(cfg, nil), ids)
	bookingService := services.NewBookingService(services.NewBookingStore(dataset.Bookings), latencyFor(cfg, nil), ids)
	statsService := services.NewStatsService(bookingService, roomService)

	// Build router
	router := routes.SetupRouter(routes.Controllers{
		Guests:    controllers.NewGuestController(guestService),
		Rooms:     controllers.NewRoomController(roomService),
		Bookings:  controllers.NewBookingController(bookingService, roomService),
		Calendar:  controllers.NewCalendarController(bookingService),
		Dashboard: controllers.NewDashboardController(statsService),
	}, cfg.CORSOrigins)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
