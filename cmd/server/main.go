package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fadilmartias/assessment-board/internal/config"
	"github.com/fadilmartias/assessment-board/internal/domain/fiber/handler"
	"github.com/fadilmartias/assessment-board/internal/logging"
	"github.com/fadilmartias/assessment-board/internal/metrics"
	"github.com/fadilmartias/assessment-board/internal/middleware"
	"github.com/fadilmartias/assessment-board/internal/repository"
	"github.com/fadilmartias/assessment-board/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log := logging.New(cfg.Log.Level, cfg.App.IsProduction())

	db, err := ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Could not open database: %v", err)
	}

	recorder := metrics.New()
	repo := repository.NewAssessmentRepository(db)
	uc := usecase.NewAssessmentUsecase(repo, recorder)
	h := handler.NewAssessmentHandler(uc, log, !cfg.App.IsProduction())

	app := NewApp(cfg, log, recorder, repo)
	h.RegisterRoutes(app.Group(cfg.App.Prefix()))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()

	log.WithField("prefix", cfg.App.Prefix()).Infof("Server running on %s", cfg.App.Port)
	if err := app.Listen(cfg.App.Port); err != nil {
		log.Fatal(err)
	}
}

// NewApp builds the fiber app with the shared middleware stack, /metrics and
// the liveness/readiness probes. Routes are registered by the caller.
func NewApp(cfg *config.Config, log *logrus.Logger, recorder *metrics.Recorder, repo *repository.AssessmentRepository) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: log.Writer(),
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: cfg.CORS.AllowCredentials && cfg.CORS.AllowOrigins != "*",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !cfg.App.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return cfg.App.IsProduction()
		},
	}))
	app.Use(healthcheck.New(healthcheck.Config{
		ReadinessProbe: func(c *fiber.Ctx) bool {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := repo.Ping(ctx); err != nil {
				log.WithError(err).Warn("readiness probe failed")
				return false
			}
			return true
		},
	}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(cfg.RateLimit, "/health", "/metrics", "/livez", "/readyz"))
	app.Use(recorder.Middleware())

	app.Get("/metrics", adaptor.HTTPHandler(recorder.Handler()))
	return app
}

// ConnectDB opens the connection pool without pinging, so an unreachable
// database fails individual requests instead of startup.
func ConnectDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, err
	}
	pgDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if !cfg.App.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}
	return db, nil
}
