package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/cydxin/studybud"
	"github.com/cydxin/studybud/config"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := NewLogger(cfg.Log)
	gin.SetMode(cfg.Server.Mode)

	db, err := openDB(cfg.Database)
	if err != nil {
		logger.Error("open database", slog.String("driver", cfg.Database.Driver), slog.Any("error", err))
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Error("connect redis", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
		os.Exit(1)
	}

	engine, err := studybud.NewEngine(
		studybud.WithDB(db),
		studybud.WithRDB(rdb),
		studybud.WithSessionTTL(cfg.Session.TTL),
		studybud.WithCookieName(cfg.Session.CookieName),
		studybud.WithSecureCookie(cfg.Session.Secure),
		studybud.WithUploadDir(cfg.App.UploadDir),
		studybud.WithFeedLimit(cfg.App.FeedLimit),
		studybud.WithServiceDebug(cfg.App.Debug),
	)
	if err != nil {
		logger.Error("create engine", slog.Any("error", err))
		os.Exit(1)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	engine.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Info("http server listening", slog.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// 先停 HTTP 再关存储，保证在途请求能写完
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.Server.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"studybud": func(ctx context.Context) error {
				logger.Info("graceful shutdown initiated")
				return shutdown(ctx, srv, db, rdb)
			},
		},
	)

	exitCode := <-wait
	logger.Info("application exited", slog.Int("code", exitCode))
	os.Exit(exitCode)
}

func openDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if cfg.Driver == "sqlite" {
		// sqlite 单写者
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func shutdown(ctx context.Context, srv *http.Server, db *gorm.DB, rdb *redis.Client) error {
	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http server: %w", err))
	}
	if err := rdb.Close(); err != nil {
		errs = append(errs, fmt.Errorf("redis: %w", err))
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("database: %w", err))
		}
	}
	return errors.Join(errs...)
}
