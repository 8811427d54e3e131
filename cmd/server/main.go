package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"geigermon/internal/config"
	"geigermon/internal/database"
	"geigermon/internal/handlers"
	"geigermon/internal/services"

	"github.com/gorilla/mux"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config.json", "Path to config file")
	dbPath := flag.String("db", "", "Path to SQLite database file (overrides config)")
	port := flag.String("port", "", "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Override with command line flags if provided
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	loc, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone %q: %v", cfg.Server.Timezone, err)
	}

	// Initialize database (creates the schema if absent)
	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database initialized at: %s", cfg.Database.Path)

	// Initialize services
	ingestService := services.NewIngestService(db, loc)
	queryService := services.NewQueryService(db)
	metricsService := services.NewMetricsService(db)
	otaSwitch := services.NewOTASwitch()

	// Initialize handlers
	ingestHandler := handlers.NewIngestHandler(ingestService, cfg.Auth.APIKey)
	queryHandler := handlers.NewQueryHandler(queryService)
	metricsHandler := handlers.NewMetricsHandler(metricsService)
	otaHandler := handlers.NewOTAHandler(otaSwitch)

	// Setup router
	router := mux.NewRouter()

	router.HandleFunc("/savedata", ingestHandler.Handle).Methods("POST")
	router.HandleFunc("/alldata", queryHandler.AllData).Methods("GET")
	router.HandleFunc("/allstatus", queryHandler.AllStatus).Methods("GET")
	router.HandleFunc("/data", queryHandler.DataByHour).Methods("GET")
	router.HandleFunc("/metrics", metricsHandler.Handle).Methods("GET")

	router.HandleFunc("/otaswitch", otaHandler.Page).Methods("GET")
	router.HandleFunc("/toggleotaswitch", otaHandler.Toggle).Methods("POST")
	router.HandleFunc("/otaswitchstate", otaHandler.State).Methods("GET")
	router.HandleFunc("/changeotaswitch", otaHandler.Change).Methods("GET")

	// Root redirects to the metrics report
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/metrics", http.StatusFound)
	}).Methods("GET")

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	}).Methods("GET")

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s (timestamps in %s)", addr, cfg.Server.Timezone)
	log.Printf("API endpoints:")
	log.Printf("  POST /savedata")
	log.Printf("  GET  /alldata")
	log.Printf("  GET  /allstatus")
	log.Printf("  GET  /data?hour=N")
	log.Printf("  GET  /metrics")
	log.Printf("  GET  /otaswitch")
	log.Printf("  GET  /health")

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
