package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/cotizador-api/internal/application/auth"
	"github.com/jhoicas/cotizador-api/internal/application/pricing"
	"github.com/jhoicas/cotizador-api/internal/application/quoting"
	infrapdf "github.com/jhoicas/cotizador-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cotizador-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cotizador-api/internal/interfaces/http"
	"github.com/jhoicas/cotizador-api/pkg/config"
	"github.com/jhoicas/cotizador-api/pkg/logger"
	"github.com/jhoicas/cotizador-api/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones de esquema")
		}
	}

	validate, err := validator.New()
	if err != nil {
		log.Fatal().Err(err).Msg("registro de validaciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	employerRepo := postgres.NewEmployerRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	engine := pricing.NewFlatRateEngine()
	createQuoteUC := quoting.NewCreateQuoteUseCase(txRunner, engine, employerRepo, quoteRepo, validate)

	// PDF: resumen descargable de la cotización para el employer
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	quotePDFUC := quoting.NewPDFUseCase(quoteRepo, employerRepo, employeeRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cotizador API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).
				JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CreateQuote: createQuoteUC,
		QuotePDF:    quotePDFUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
