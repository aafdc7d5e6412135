package main

import (
	"context" // Seed context
	"flag"    // Command line flags

	"banking_api/internal/config" // Custom import path (Config)
	"banking_api/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus"
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	seedPath := flag.String("seed", cfg.SeedFile, "YAML seed file to load after migrating")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	gdb, err := db.Open(cfg.DSN(), cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}

	if *seedPath == "" {
		return
	}
	seed, err := db.LoadSeed(*seedPath)
	if err != nil {
		logrus.Fatalf("failed to load seed: %v", err)
	}
	if _, err := db.Seed(context.Background(), gdb, seed); err != nil {
		logrus.Fatalf("seeding failed: %v", err)
	}
}
