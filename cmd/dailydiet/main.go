package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/dailydiet/internal/api"
	"github.com/terraincognita07/dailydiet/internal/config"
	"github.com/terraincognita07/dailydiet/internal/db"
	applog "github.com/terraincognita07/dailydiet/internal/logger"
	"github.com/terraincognita07/dailydiet/internal/security"
)

const ephemeralSecretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	log := applog.New(applog.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	slog.SetDefault(log)

	location, err := cfg.Location()
	if err != nil {
		log.Warn("invalid TZ, falling back to UTC", "tz", cfg.TimeZone, "error", err)
	}
	time.Local = location

	secretKey, err := resolveSecretKey(cfg)
	if err != nil {
		log.Error("secret key init failed", "error", err)
		os.Exit(1)
	}
	if cfg.SecretKey == "" {
		log.Warn("SECRET_KEY not set, sessions will not survive a restart")
	}

	database, err := db.Open(cfg.DBDriver, cfg.DBPath, cfg.DatabaseURL)
	if err != nil {
		log.Error("database init failed", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}

	handler, err := api.NewHandler(database, api.Options{
		SecretKey:           secretKey,
		CookieSecure:        cfg.IsProduction(),
		ExposeUserDirectory: cfg.ExposeUserDirectory,
		Location:            location,
		Logger:              log,
	})
	if err != nil {
		log.Error("handler init failed", "error", err)
		os.Exit(1)
	}

	app := newApp(handler, cfg.CORSAllowedOrigins)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	}()

	log.Info("daily diet api listening",
		"addr", "0.0.0.0:"+cfg.Port,
		"env", cfg.Environment,
		"db_driver", cfg.DBDriver,
		"tz", location.String(),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newApp(handler *api.Handler, allowedOrigins []string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Daily Diet API",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(corsMiddlewareConfig(allowedOrigins)))

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func corsMiddlewareConfig(allowedOrigins []string) cors.Config {
	return cors.Config{
		AllowOrigins:     strings.Join(allowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type",
		AllowCredentials: true,
	}
}

// resolveSecretKey returns the configured key or, outside production, a
// random key that lives as long as the process.
func resolveSecretKey(cfg *config.Config) (string, error) {
	if cfg.SecretKey != "" {
		return cfg.SecretKey, nil
	}
	return security.RandomString(48, ephemeralSecretAlphabet)
}
