// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_titan_quest/internal/config"
	"go_titan_quest/internal/content"
	"go_titan_quest/internal/handlers"
	"go_titan_quest/internal/jobs"
	"go_titan_quest/internal/middleware"
	"go_titan_quest/internal/repository"
	"go_titan_quest/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 1. データベース
	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	startupCtx, cancelStartup := context.WithTimeout(middleware.WithLogger(context.Background(), logger), 30*time.Second)
	defer cancelStartup()

	clock, err := service.NewClock(cfg.App.Timezone)
	if err != nil {
		slog.Error("Invalid timezone", slog.String("timezone", cfg.App.Timezone), slog.Any("error", err))
		os.Exit(1)
	}

	// 2. 生成AI (失敗時は代替コンテンツ)
	generator, err := content.NewGenerator(startupCtx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	if err != nil {
		slog.Error("Error initializing content generator", slog.Any("error", err))
		os.Exit(1)
	}
	provider := content.NewFallbackProvider(content.NewGeminiProvider(generator, cfg.Gemini.Language))

	mailer, err := service.NewMailer(startupCtx, cfg)
	if err != nil {
		slog.Error("Error initializing mailer", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	profileRepo := repository.NewGormProfileRepository()
	planRepo := repository.NewGormPlanRepository()
	cache := service.NewSnapshotCache()

	authService := service.NewAuthService(cfg)
	profileService := service.NewProfileService(db, profileRepo, planRepo, authService, cache, clock)
	questService := service.NewQuestService(db, profileRepo, planRepo, provider, cache, clock)
	challengeService := service.NewChallengeService(db, profileRepo, provider, cache, clock)
	insightService := service.NewInsightService(db, profileRepo, planRepo, provider, mailer, cache, clock)
	campaignService := service.NewCampaignService(db, profileRepo, provider, cache)

	// 4. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))

	auth := middleware.DevPlayerContextMiddleware
	if cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
		auth = middleware.JWTAuthMiddleware(cfg)
	} else {
		slog.Warn("Authentication disabled, using X-Player-ID header")
	}

	handlers.RegisterRoutes(r, handlers.Handlers{
		Health:    handlers.NewHealthHandler(db),
		Profile:   handlers.NewProfileHandler(profileService),
		Quest:     handlers.NewQuestHandler(questService),
		Challenge: handlers.NewChallengeHandler(challengeService),
		Insight:   handlers.NewInsightHandler(insightService),
		Campaign:  handlers.NewCampaignHandler(campaignService),
	}, auth)

	// 5. Jobs
	autoSaver := jobs.NewAutoSaver(db, profileRepo, cache, logger, cfg.Jobs.AutosaveInterval)
	autoSaver.Start()

	// 6. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	// リクエストが止まってから最後の自動保存を行う
	autoSaver.Stop()

	log.Println("Server exiting")
}
