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

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	apihandler "github.com/parkgrid/occupancy/internal/adapter/handler"
	"github.com/parkgrid/occupancy/internal/adapter/repository/postgres"
	"github.com/parkgrid/occupancy/internal/config"
	"github.com/parkgrid/occupancy/internal/core/services"
	"github.com/parkgrid/occupancy/internal/platform/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		log.Fatalf("Failed to connect to db after retries: %v", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		DB:   0,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connected successfully!")

	lotRepo := postgres.NewLotRepository(db)
	carRepo := postgres.NewCarRepository(db)
	capacityRepo := postgres.NewCapacityRepository(db)
	entryRepo := postgres.NewEntryRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	occupancyService := services.NewOccupancyService(
		lotRepo, carRepo, capacityRepo, entryRepo, ticketRepo, auditRepo, redisClient)

	reconciler := services.NewReconciliationService(lotRepo, entryRepo, capacityRepo, ticketRepo)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.ReconcileSchedule, func() {
		if err := reconciler.Run(context.Background()); err != nil {
			log.Printf("reconciliation sweep failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule reconciliation sweep: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	occupancyHandler := apihandler.NewOccupancyHandler(occupancyService)
	auth := apihandler.NewAuthMiddleware(cfg.JWTSecret)

	router := mux.NewRouter()

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.RequireRole(apihandler.RoleAttendant))
	api.HandleFunc("/entries", occupancyHandler.RegisterEntry).Methods(http.MethodPost)
	api.HandleFunc("/entries/{id}/exit", occupancyHandler.RegisterExit).Methods(http.MethodPost)
	api.HandleFunc("/cars/{ref}/entry", occupancyHandler.ActiveEntry).Methods(http.MethodGet)
	api.HandleFunc("/lots/{id}/availability", occupancyHandler.LotAvailability).Methods(http.MethodGet)

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(auth.RequireRole(apihandler.RoleAdmin))
	admin.HandleFunc("/lots/{id}/spaces", occupancyHandler.ResizeLot).Methods(http.MethodPut)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handlers.LoggingHandler(os.Stdout, corsHandler(router)),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port :%s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
