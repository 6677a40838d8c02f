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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/swaggo/swag"

	"github.com/jhoicas/commodities-api/docs"
	appanalytics "github.com/jhoicas/commodities-api/internal/application/analytics"
	"github.com/jhoicas/commodities-api/internal/application/auth"
	"github.com/jhoicas/commodities-api/internal/application/usecase"
	"github.com/jhoicas/commodities-api/internal/domain/repository"
	"github.com/jhoicas/commodities-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/commodities-api/internal/infrastructure/pdf"
	infraredis "github.com/jhoicas/commodities-api/internal/infrastructure/redis"
	"github.com/jhoicas/commodities-api/internal/infrastructure/seed"
	infraxlsx "github.com/jhoicas/commodities-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/commodities-api/internal/interfaces/http"
	"github.com/jhoicas/commodities-api/pkg/config"
	"github.com/jhoicas/commodities-api/pkg/format"
	"github.com/jhoicas/commodities-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("token_mode", cfg.Auth.TokenMode).
		Bool("enforce_access", cfg.Auth.Enforce).
		Msg("iniciando aplicación")

	ctx := context.Background()

	fixture, err := seed.Load(cfg.Seed.File)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar seed")
	}
	log.Info().Int("users", len(fixture.Users)).Int("products", len(fixture.Products)).Msg("seed cargado")

	// Sesiones: Redis si REDIS_ADDR está configurado; en memoria en otro caso.
	var sessions repository.SessionRegistry
	if cfg.Redis.Enabled() {
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		sessions = infraredis.NewSessionRegistry(client, "")
		log.Info().Str("addr", cfg.Redis.Addr).Msg("registro de sesiones en Redis")
	} else {
		sessions = memory.NewSessionRegistry(nil)
	}

	var encoder auth.TokenEncoder = auth.OpaqueTokenEncoder{}
	if cfg.Auth.TokenMode == config.TokenModeJWT {
		encoder = auth.JWTTokenEncoder{
			Secret: cfg.JWT.Secret,
			Issuer: cfg.JWT.Issuer,
			TTL:    cfg.Auth.SessionTTL(),
		}
	}

	productRepo := memory.NewProductRepository(fixture.Products)
	authUC := auth.NewAuthUseCase(
		memory.NewUserDirectory(fixture.Users),
		sessions,
		encoder,
		auth.Config{SessionTTL: cfg.Auth.SessionTTL()},
		log,
	)
	productUC := usecase.NewProductUseCase(productRepo, log)
	dashboardUC := appanalytics.NewDashboardUseCase(
		productRepo,
		infrapdf.NewReportGenerator("Commodities Inventory Report", format.New("en")),
		infraxlsx.NewProductExporter(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.File); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.File,
			Path:     "docs",
			Title:    "Commodities API",
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.File).Msg("swagger.json no encontrado, /docs deshabilitado")
	}
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return fiber.ErrInternalServerError
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		DashboardUC:   dashboardUC,
		EnforceAccess: cfg.Auth.Enforce,
		Logger:        log,
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
