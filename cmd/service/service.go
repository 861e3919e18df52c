package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitlife/internal/cache"
	"fitlife/internal/config"
	"fitlife/internal/database"
	"fitlife/internal/logger"
	"fitlife/internal/middleware"
	"fitlife/internal/router"
	"fitlife/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

const version = "1.0.0"

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = serveUntilSignal
	exitFunc        = os.Exit
)

// serveUntilSignal 啟動 HTTP server，收到 SIGINT/SIGTERM 時優雅關閉
func serveUntilSignal(e *echo.Echo, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg.LogLevel, !cfg.IsProduction())

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	// 連線池在第一次查詢時才建立
	db := database.NewLazyDB(cfg.DatabaseURL, newPgxPool)
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("關閉 Redis 連線失敗")
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validation.Validator()}
	e.Debug = !cfg.IsProduction()
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())

	router.Setup(e, db, rdb, router.Config{
		SessionTTL: cfg.SessionTTL,
		Secure:     cfg.IsProduction(),
		Version:    version,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.Env).Msg("starting server")
	return startServer(e, cfg.HTTPAddr)
}
