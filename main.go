package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"

	"payment-reports-api/config"
	"payment-reports-api/database"
	"payment-reports-api/handlers"
	"payment-reports-api/services/exchange"
	"payment-reports-api/services/report"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		// Only slow requests and errors are worth a log line.
		elapsed := time.Since(start)
		if elapsed > 500*time.Millisecond || wrapper.status >= 400 {
			log.Printf("%s %s %s %d %v", r.Method, r.RequestURI, r.RemoteAddr, wrapper.status, elapsed)
		}
	})
}

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic recovered: %v", rec)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds | log.LUTC)

	cfg := config.Load()
	log.Printf("Configuration loaded successfully")

	// Connect to the database with retry.
	var db *database.Connection
	var err error
	for retries := 0; retries < 5; retries++ {
		db, err = database.NewConnection(cfg.Database)
		if err == nil {
			break
		}
		retryDelay := time.Duration(retries+1) * time.Second
		log.Printf("Failed to connect to database (attempt %d/5): %v. Retrying in %v...",
			retries+1, err, retryDelay)
		time.Sleep(retryDelay)
	}
	if err != nil {
		log.Fatalf("Failed to connect to database after retries: %v", err)
	}
	defer db.Close()

	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer schemaCancel()
	if err := db.EnsureSchema(schemaCtx); err != nil {
		log.Fatalf("Failed to prepare database schema: %v", err)
	}
	log.Println("Successfully connected to database")

	// Shared rate store is optional; without Redis rates are only cached
	// in-process.
	var rateStore exchange.Store
	var redisStore *exchange.RedisStore
	if cfg.Redis.URL != "" {
		redisStore, err = exchange.NewRedisStore(cfg.Redis.URL)
		if err != nil {
			log.Printf("Warning: shared rate store unavailable: %v", err)
		} else {
			defer redisStore.Close()
			rateStore = redisStore
			log.Println("Successfully connected to Redis")
		}
	}

	rateClient := exchange.NewClient(cfg.Exchange.BaseURL, cfg.Exchange.Timeout)
	rateCache := exchange.NewCache(rateClient, rateStore)
	builder := report.NewBuilder(rateCache)

	reportHandler, err := handlers.NewReportHandler(builder)
	if err != nil {
		log.Fatalf("Failed to initialize report handler: %v", err)
	}
	customerReportHandler, err := handlers.NewCustomerReportHandler(builder, db)
	if err != nil {
		log.Fatalf("Failed to initialize customer report handler: %v", err)
	}

	router := mux.NewRouter()
	router.Use(corsMiddleware)
	router.Use(loggingMiddleware)
	router.Use(recoverMiddleware)

	router.HandleFunc("/report", reportHandler.GenerateReport).Methods("POST", "OPTIONS")
	router.HandleFunc("/customer-report", customerReportHandler.CreateReport).Methods("POST", "OPTIONS")
	router.HandleFunc("/customer-report/{customer_id}", customerReportHandler.GetReport).Methods("GET", "OPTIONS")

	startTime := time.Now()
	router.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		health := struct {
			Status   string `json:"status"`
			Time     string `json:"time"`
			Database string `json:"database"`
			Redis    string `json:"redis"`
			Uptime   string `json:"uptime"`
		}{
			Status:   "ok",
			Time:     time.Now().Format(time.RFC3339),
			Database: "connected",
			Redis:    "disabled",
			Uptime:   fmt.Sprintf("%v", time.Since(startTime)),
		}

		dbCtx, dbCancel := context.WithTimeout(ctx, 500*time.Millisecond)
		defer dbCancel()
		if err := db.GetDB().PingContext(dbCtx); err != nil {
			health.Status = "degraded"
			health.Database = "error"
		}

		if redisStore != nil {
			redisCtx, redisCancel := context.WithTimeout(ctx, 500*time.Millisecond)
			defer redisCancel()
			health.Redis = "connected"
			if err := redisStore.Ping(redisCtx); err != nil {
				health.Status = "degraded"
				health.Redis = "error"
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(health)
	}).Methods("GET")

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-stop
	log.Println("Shutdown signal received, gracefully shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}
