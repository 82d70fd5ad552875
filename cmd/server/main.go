package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	httpctx "github.com/dtroode/catalog-server/internal/api/http/context"
	"github.com/dtroode/catalog-server/internal/api/http/handler"
	"github.com/dtroode/catalog-server/internal/api/http/middleware"
	"github.com/dtroode/catalog-server/internal/api/http/router"
	httpserver "github.com/dtroode/catalog-server/internal/api/http/server"
	"github.com/dtroode/catalog-server/internal/config"
	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/model"
	"github.com/dtroode/catalog-server/internal/repository/postgres"
	"github.com/dtroode/catalog-server/internal/server"
	"github.com/dtroode/catalog-server/internal/service"
	"github.com/dtroode/catalog-server/internal/storage/minio"
	"github.com/dtroode/catalog-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
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
	prometheus.MustRegister(postgres.NewPoolStatsCollector(db.Pool))

	userRepo := postgres.NewUserRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	productRepo := postgres.NewProductRepository(db)
	imageRepo := postgres.NewImageRepository(db)

	codec := token.NewJWT(token.Options{
		AccessSecret:  cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     cfg.JWT.ExpiresIn.Std(),
		RefreshTTL:    cfg.JWT.RefreshExpiresIn.Std(),
	})
	tokenService := service.NewTokenService(codec, refreshTokenRepo, cfg.JWT.RefreshExpiresIn.Std(), logger)

	strategies := []service.VerificationStrategy{service.NewAccessTokenStrategy(codec)}
	if cfg.JWT.AllowRefreshFallback {
		strategies = append(strategies, service.NewRefreshTokenStrategy(codec, tokenService))
	}
	authenticator := service.NewAuthenticator(userRepo, logger, strategies...)

	storageClient, err := minio.NewClient(ctx, minio.Options{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
		PublicURL: cfg.Storage.PublicURL,
	}, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	services := router.Services{
		Auth:    service.NewAuth(userRepo, codec, tokenService, logger),
		Company: service.NewCompany(companyRepo, logger),
		Product: service.NewProduct(productRepo, companyRepo, logger),
		Image:   service.NewImage(imageRepo, companyRepo, productRepo, userRepo, storageClient, logger),
	}

	health := handler.NewHealth(logger)
	health.Register("postgres", db.Ping)
	health.Register("storage", storageClient.Ping)

	var limiter middleware.Limiter = middleware.NewRateLimiter()
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		limiter = middleware.NewRedisLimiter(redisClient, logger)
		health.Register("redis", func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	trustedProxies, err := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		logger.Fatal("invalid trusted proxies", "error", err)
	}

	r := router.New(services, authenticator, health, httpctx.NewManager(), logger, router.Options{
		BasePath:         cfg.HTTP.BasePath,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: cfg.CORS.Credentials,
		ExposeErrors:     !cfg.IsProduction(),
		Limiter:          limiter,
		RateLimitWindow:  cfg.RateLimit.Window.Std(),
		MaxRequests:      cfg.RateLimit.MaxRequests,
		AuthMaxRequests:  cfg.RateLimit.AuthMaxRequests,
		TrustedProxies:   trustedProxies,
	})
	httpServer := httpserver.NewHTTPServer(r.Register(), cfg.HTTP.Address(), cfg.HTTP.ReadTimeout.Std(), cfg.HTTP.WriteTimeout.Std())

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		service.NewLedgerSweeper(refreshTokenRepo, cfg.Ledger.SweepInterval.Std(), logger).Run(ctx)
	}()
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "environment", cfg.Environment)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err.Error())
			stop()
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err.Error(), "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
