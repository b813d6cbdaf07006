package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"episolve-backend/config"
	_ "episolve-backend/docs" // Important for Swagger
	"episolve-backend/internal/delivery/http/middleware"
	v1 "episolve-backend/internal/delivery/http/v1"
	"episolve-backend/internal/usecase"
	"episolve-backend/pkg/email"
	"episolve-backend/pkg/logger"
	"episolve-backend/pkg/redis"
	"episolve-backend/pkg/security"
	"episolve-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

const serviceName = "episolve-backend"

// @title           Episolve Backend API
// @version         1.0
// @description     Form endpoints for the Episolve marketing site: contact, strategic audit booking and newsletter signup.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting episolve backend", "port", cfg.Port, "env", cfg.Environment)

	secLog := security.NewSecurityLogger(serviceName, cfg.Environment)
	defer func() { _ = secLog.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// 3. Setup Database + Repositories
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to set up database", "error", err)
		os.Exit(1)
	}
	defer repos.close()

	checks := map[string]usecase.Pinger{"database": repos.ping}

	// 4. Setup Redis (optional, rate limiting falls back to memory)
	redisClient, err := redis.New(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Warn("UPSTASH_REDIS_URL not configured, rate limiting uses in-memory fallback")
	case err != nil:
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	default:
		defer redisClient.Close()
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	rateLimiter := middleware.NewRateLimiter(redisClient, secLog)
	defer rateLimiter.Close()

	// 5. Setup Email Sender
	var sender email.Sender
	if cfg.EmailEnabled() {
		sender = email.NewResendSender(cfg.ResendAPIKey, cfg.EmailTimeout)
	} else {
		logger.Log.Warn("RESEND_API_KEY not configured, emails will be logged and dropped")
		sender = email.NewNoopSender(logger.Log)
	}

	// 6. Setup UseCases
	validate := validation.New()
	ucCfg := usecase.Config{
		SenderFrom:   cfg.EmailFrom,
		WebsiteFrom:  cfg.EmailFromWebsite,
		AdminTo:      cfg.AdminEmailTo,
		StoreTimeout: cfg.DBTimeout,
		EmailTimeout: cfg.EmailTimeout,
	}
	contactUC := usecase.NewContactUsecase(repos.contact, sender, validate, ucCfg)
	bookingUC := usecase.NewBookingUsecase(repos.booking, sender, validate, ucCfg)
	newsletterUC := usecase.NewNewsletterUsecase(repos.subscriber, sender, validate, ucCfg)
	healthUC := usecase.NewHealthUsecase(checks, 2*time.Second)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:       contactUC,
		BookingUC:       bookingUC,
		NewsletterUC:    newsletterUC,
		HealthUC:        healthUC,
		SecurityLogger:  secLog,
		RateLimiter:     rateLimiter,
		FormLimit:       middleware.FormRateLimitConfig(cfg.RateLimitFormThreshold, cfg.RateLimitWindow()),
		TrustedProxies:  cfg.TrustedProxies,
		TrustedPlatform: cfg.TrustedPlatform,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// In-flight requests may still be sending email.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.EmailTimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
