// @title        Task Manager API
// @version      1.0
// @description  多租戶工作管理 API：註冊、登入與工作 CRUD，管理員可檢視與刪除所有工作
// @host         localhost:5000
// @BasePath     /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	_ "github.com/Abbas-Hussain-byte/primetrade-assignment/docs" // 引入 swag 產出的 docs
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/cache"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/config"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/database"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/logger"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/middleware"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/router"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/worker"

	echoSwagger "github.com/swaggo/echo-swagger"
)

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
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	l, err := logger.New(cfg.Env, os.Stdout)
	if err != nil {
		return fmt.Errorf("logger 建立失敗: %w", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	redis, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}
	l.Info().Msg("migrations applied")

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Debug = cfg.Env != config.EnvProd
	e.Use(middleware.RequestLogger(l))
	e.Use(echomw.Recover())

	router.Setup(e, db, redis, wp)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	l.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.Env).Msg("starting server")
	return startServer(e, cfg.HTTPAddr)
}

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("service stopped")
		exitFunc(1)
	}
}
