package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/terraincognita07/cyclesense/internal/api"
	"github.com/terraincognita07/cyclesense/internal/db"
	"github.com/terraincognita07/cyclesense/internal/services"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey, err := resolveSecretKey()
	if err != nil {
		return err
	}
	port, err := resolvePort()
	if err != nil {
		return err
	}
	dbPath := defaultDBPath()
	rulesDir := getEnv("RULES_DIR", "")

	rulebook, err := services.RuleBookFromDir(rulesDir)
	if err != nil {
		return fmt.Errorf("rule tables init failed: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	app, err := newServerApp(database, rulebook, secretKey, location, resolveCookieSecure())
	if err != nil {
		return err
	}

	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	rulesSource := "embedded"
	if rulesDir != "" {
		rulesSource = rulesDir
	}
	log.Printf("CycleSense listening on http://0.0.0.0:%s (db: %s, tz: %s, rules: %s)", port, dbPath, location.String(), rulesSource)
	if err := app.Listen(":" + port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newServerApp(database *gorm.DB, rulebook *services.RuleBook, secretKey string, location *time.Location, cookieSecure bool) (*fiber.App, error) {
	handler, err := api.NewHandler(database, rulebook, secretKey, location, cookieSecure)
	if err != nil {
		return nil, fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "CycleSense",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(compress.New())
	app.Use(api.MetricsMiddleware())

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, nil
}
