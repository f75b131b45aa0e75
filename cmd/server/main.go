package main

import (
	"context"
	stdlog "log"
	"os"

	"github.com/agenthands/conceptgraph/internal/config"
	"github.com/agenthands/conceptgraph/internal/core"
	"github.com/agenthands/conceptgraph/internal/core/export"
	"github.com/agenthands/conceptgraph/internal/driver"
	"github.com/agenthands/conceptgraph/internal/log"
	"github.com/agenthands/conceptgraph/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		stdlog.Fatalf("Invalid environment: %v", err)
	}
	if err := cfg.LLM.Validate(); err != nil {
		stdlog.Fatalf("Invalid llm configuration: %v", err)
	}

	logger := log.New(log.ParseLevel(cfg.Log.Level))
	ctx := context.Background()

	var exporter *export.Exporter
	if cfg.Memgraph.URI != "" {
		d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, logger)
		if err != nil {
			stdlog.Fatalf("Failed to connect to Memgraph: %v", err)
		}
		defer d.Close(ctx)
		if err := d.BuildIndices(ctx); err != nil {
			logger.Warn("failed to build indices: %v", err)
		}
		exporter = export.NewExporter(d, logger)
	}

	srv := server.NewServer(core.NewGenerator(logger), cfg.LLM, exporter, logger)
	r := srv.SetupRouter()

	logger.Info("starting server on port %s (provider %s)", cfg.Server.Port, cfg.LLM.Provider)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		stdlog.Fatal(err)
	}
}
