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
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/jhoicas/plywood-inventory/internal/application/report"
	"github.com/jhoicas/plywood-inventory/internal/application/screens"
	"github.com/jhoicas/plywood-inventory/internal/application/seed"
	"github.com/jhoicas/plywood-inventory/internal/application/session"
	"github.com/jhoicas/plywood-inventory/internal/application/usecase"
	"github.com/jhoicas/plywood-inventory/internal/domain/gateway"
	"github.com/jhoicas/plywood-inventory/internal/domain/repository"
	"github.com/jhoicas/plywood-inventory/internal/infrastructure/auth"
	"github.com/jhoicas/plywood-inventory/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/plywood-inventory/internal/infrastructure/pdf"
	"github.com/jhoicas/plywood-inventory/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/plywood-inventory/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/plywood-inventory/internal/interfaces/http"
	"github.com/jhoicas/plywood-inventory/pkg/config"
	"github.com/jhoicas/plywood-inventory/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("gateway", cfg.Gateway.Mode).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		tables  gateway.TableClient
		creds   repository.CredentialRepository
		storage repository.SessionStorage
	)
	authCfg := auth.Config{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}

	switch cfg.Gateway.Mode {
	case config.GatewayMemory:
		tables = memory.NewTables()
		creds = memory.NewCredentialRepository()
		storage = memory.NewSessionStorage()
		authCfg.DemoPassword = cfg.Gateway.DemoPassword
		if authCfg.Secret == "" {
			authCfg.Secret = uuid.NewString()
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migración del esquema")
		}

		rdb, err := infraredis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()

		tables = postgres.NewTableClient(pool)
		creds = postgres.NewCredentialRepository(pool)
		storage = infraredis.NewSessionStorage(rdb, cfg.Redis.Prefix)
	}

	plywoodUC := usecase.NewPlywoodUseCase(tables, log.Named("plywood"))
	supplierUC := usecase.NewSupplierUseCase(tables, log.Named("suppliers"))
	transactionUC := usecase.NewTransactionUseCase(tables, log.Named("transactions"))
	profileUC := usecase.NewProfileUseCase(tables, log.Named("profiles"))

	if cfg.Gateway.Mode == config.GatewayMemory {
		res, err := seed.Run(ctx, seed.Writers{Plywood: plywoodUC, Suppliers: supplierUC, Transactions: transactionUC})
		if err != nil {
			log.Fatal().Err(err).Msg("datos de demostración")
		}
		log.Info().Int("sheets", res.Sheets).Int("suppliers", res.Suppliers).Msg("gateway en memoria con datos de demostración")
	}

	provider := auth.NewProvider(creds, storage, authCfg, log.Named("auth"))
	registry := session.NewRegistry(provider, profileUC, time.Duration(cfg.Session.IdleMinutes)*time.Minute, log.Named("session"))
	if err := registry.StartSweeper("@every 1m"); err != nil {
		log.Fatal().Err(err).Msg("barrido de sesiones")
	}

	reportUC := report.NewUseCase(plywoodUC, infrapdf.NewMarotoReportGenerator(language.English))

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
		Title:    "Plywood Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "sessions": registry.Len()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:      registry,
		CookieName:    cfg.Session.CookieName,
		EmployeeCode:  cfg.Session.EmployeeCode,
		PlywoodUC:     plywoodUC,
		SupplierUC:    supplierUC,
		TransactionUC: transactionUC,
		DashboardUC:   screens.NewDashboardUseCase(plywoodUC, transactionUC),
		InventoryUC:   screens.NewInventoryUseCase(plywoodUC, supplierUC),
		CatalogUC:     screens.NewCatalogUseCase(plywoodUC),
		ReportUC:      reportUC,
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
	registry.Close()

	log.Info().Msg("aplicación detenida")
}
