package main

import (
	"flag"
	"os"

	"imobia/config"

	"github.com/sirupsen/logrus"
)

// Migrations run here, at deploy time, never from the API server: a failed
// migration should stop the deploy loudly instead of being swallowed at
// boot.
func main() {
	down := flag.Int("down", 0, "roll back this many migration steps instead of migrating up")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	if *down > 0 {
		if err := config.RollbackMigrations(cfg.DatabaseURL, *down); err != nil {
			logger.WithError(err).Fatal("rollback failed")
		}
		logger.WithField("steps", *down).Info("rollback applied")
		return
	}

	if err := config.RunMigrations(cfg.DatabaseURL); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}
	logger.Info("migrations applied")
}
