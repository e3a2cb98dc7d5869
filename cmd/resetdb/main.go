// Command resetdb drops every table and recreates the schema. It refuses to
// run in production unless -force is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hrapp/hr-backend-go/internal/config"
	"github.com/hrapp/hr-backend-go/internal/pkg/database"
)

func main() {
	force := flag.Bool("force", false, "allow resetting when APP_ENV=production")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	if cfg.App.Env == "production" && !*force {
		slog.Error("Refusing to reset a production database without -force")
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Reset(ctx); err != nil {
		slog.Error("Error resetting database", "error", err)
		os.Exit(1)
	}
	slog.Info("Database reset", "database", cfg.Database.Name, "host", cfg.Database.Host)
}
