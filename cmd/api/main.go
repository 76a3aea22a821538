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

	appanalytics "github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	appmarketplace "github.com/jhoicas/Almacen-api/internal/application/marketplace"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	inframarketplace "github.com/jhoicas/Almacen-api/internal/infrastructure/marketplace"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Almacen-api/internal/interfaces/http"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	shelfRepo := postgres.NewShelfRepository(pool)
	logRepo := postgres.NewInventoryLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cliente del marketplace: si faltan credenciales no falla aquí, cada
	// llamada devuelve el error correspondiente y el resto del panel funciona.
	marketplaceClient := inframarketplace.NewClient(cfg.Marketplace, log)
	if !cfg.Marketplace.Configured() {
		log.Warn().Msg("marketplace sin configurar: las vistas remotas devolverán error")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	shelfUC := usecase.NewShelfUseCase(shelfRepo, productRepo, log)
	mutationUC := inventory.NewMutationUseCase(txRunner, shelfRepo)
	syncUC := inventory.NewSyncUseCase(marketplaceClient, productRepo, log)
	criticalUC := inventory.NewCriticalUseCase(productRepo, marketplaceClient, log)
	ordersUC := appmarketplace.NewOrdersUseCase(marketplaceClient, log)
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, logRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		ShelfUC:     shelfUC,
		MutationUC:  mutationUC,
		SyncUC:      syncUC,
		CriticalUC:  criticalUC,
		OrdersUC:    ordersUC,
		DashboardUC: dashboardUC,
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
