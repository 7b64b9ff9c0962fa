package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/insureai/cliparse"
	"github.com/danielhkuo/insureai/db"
	"github.com/danielhkuo/insureai/inference"
	"github.com/danielhkuo/insureai/middleware"
	"github.com/danielhkuo/insureai/router"
	"github.com/danielhkuo/insureai/session"
)

func main() {
	var err error

	// Optional .env next to the binary; real environment wins
	if path, err := cliparse.LoadDotenv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	} else if path != "" {
		slog.Info("Loaded environment file", "path", path)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Load the cost model; nothing can be served without it
	adapter, err := inference.Load(cfg.ModelPath, cfg.ScalerPath)
	if err != nil {
		slog.Error("model load failed", "model", cfg.ModelPath, "scaler", cfg.ScalerPath, "error", err)
		os.Exit(1)
	}

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)

	// Create router
	mux := router.NewRouter(dbConn, cfg, adapter, sessions)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
