package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtroode/catalog-server/internal/config"
	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/repository/postgres"
	"github.com/dtroode/catalog-server/internal/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	seeder := seed.NewSeeder(postgres.NewUserRepository(db), postgres.NewCompanyRepository(db), logger)
	res, err := seeder.Run(ctx, seed.Params{
		AdminName:     cfg.Seed.AdminName,
		AdminEmail:    cfg.Seed.AdminEmail,
		AdminPassword: cfg.Seed.AdminPassword,
		CompanyName:   cfg.Seed.CompanyName,
		CompanyEmail:  cfg.Seed.CompanyEmail,
	})
	if err != nil {
		db.Close()
		logger.Fatal("failed to seed database", "error", err)
	}

	logger.Info("Seed complete",
		"company_id", res.Company.ID,
		"company_created", res.CompanyCreated,
		"admin_id", res.Admin.ID,
		"admin_created", res.AdminCreated,
	)
}
