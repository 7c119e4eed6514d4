package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/covalenthq/lumberjack"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/meinhoongagan/tourbook/config"
	"github.com/meinhoongagan/tourbook/controllers"
	"github.com/meinhoongagan/tourbook/cron"
	"github.com/meinhoongagan/tourbook/db"
	"github.com/meinhoongagan/tourbook/middleware"
	"github.com/meinhoongagan/tourbook/redis"
	"github.com/meinhoongagan/tourbook/routes"
	"github.com/meinhoongagan/tourbook/services"
	"github.com/meinhoongagan/tourbook/store"
	"github.com/meinhoongagan/tourbook/utils"
)

func initLogger(file string) io.Writer {
	if file == "" {
		return os.Stdout
	}
	w := io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   file,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
	log.SetOutput(w)
	return w
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
	log.Println("Server exited")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logOutput := initLogger(cfg.Server.LogFile)

	gormDB, err := db.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()
	if cfg.Database.AutoMigrate {
		if err := db.Migrate(gormDB); err != nil {
			return err
		}
	}
	st := store.New(gormDB)

	var revoker services.Revoker
	if cfg.Redis.Addr != "" {
		client, err := redis.NewClient(context.Background(), cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer client.Close()
		revoker = redis.NewTokenDenylist(client)
	} else {
		log.Println("REDIS_ADDR not set, logout will not revoke tokens")
	}

	var photos services.ObjectStorage
	if cfg.Cloudinary.Enabled() {
		cld, err := utils.NewCloudinaryStorage(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey,
			cfg.Cloudinary.APISecret, cfg.Cloudinary.UploadPreset)
		if err != nil {
			return fmt.Errorf("initialize cloudinary: %w", err)
		}
		photos = cld
	} else {
		log.Println("Cloudinary not configured, photo uploads are disabled")
	}

	tokens := utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)
	ratings := services.NewRatingService(st)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Output: logOutput}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Tourbook API")
	})
	routes.Setup(app, routes.Handlers{
		Auth:               middleware.NewAuth(services.NewGuard(st, st, tokens, revoker), tokens.Secret()),
		Accounts:           controllers.NewAuthController(services.NewAccountService(st, tokens, revoker, photos)),
		References:         controllers.NewReferenceController(services.NewReferenceService(st)),
		Resumes:            controllers.NewResumeController(services.NewResumeService(st, ratings)),
		Tours:              controllers.NewTourController(services.NewTourService(st, ratings, photos)),
		Reviews:            controllers.NewReviewController(services.NewReviewService(st)),
		Bookings:           controllers.NewBookingController(services.NewBookingService(st, cfg.Bookings.PublicFetch)),
		PublicBookingFetch: cfg.Bookings.PublicFetch,
	})

	if cfg.Bookings.DigestSchedule != "" {
		digest := cron.NewPendingDigest(st, cfg.Bookings.StaleAfter, nil)
		scheduler, err := cron.Start(cfg.Bookings.DigestSchedule, digest)
		if err != nil {
			return fmt.Errorf("start cron jobs: %w", err)
		}
		defer scheduler.Stop()
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}()

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
