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

	"github.com/jhoicas/Comanda-api/internal/application/catalog"
	"github.com/jhoicas/Comanda-api/internal/application/debts"
	"github.com/jhoicas/Comanda-api/internal/application/finance"
	"github.com/jhoicas/Comanda-api/internal/application/importer"
	"github.com/jhoicas/Comanda-api/internal/application/inventory"
	"github.com/jhoicas/Comanda-api/internal/application/ordering"
	"github.com/jhoicas/Comanda-api/internal/application/recipes"
	"github.com/jhoicas/Comanda-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Comanda-api/internal/interfaces/http"
	"github.com/jhoicas/Comanda-api/pkg/config"
	"github.com/jhoicas/Comanda-api/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	itemRepo := postgres.NewStockItemRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	financeRepo := postgres.NewFinanceRepository(pool)
	ruleRepo := postgres.NewAllocationRuleRepository(pool)
	debtRepo := postgres.NewDebtRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogUC := catalog.NewUseCase(productRepo, uuid.NewString)
	inventoryUC := inventory.NewUseCase(txRunner, itemRepo, movementRepo, uuid.NewString)
	orderingUC := ordering.NewUseCase(txRunner, orderRepo, uuid.NewString, time.Now)
	recipesUC := recipes.NewUseCase(txRunner, recipeRepo, productRepo, itemRepo, uuid.NewString)
	importerUC := importer.NewUseCase(txRunner, productRepo, itemRepo, uuid.NewString)
	financeUC := finance.NewUseCase(financeRepo, expenseRepo, ruleRepo, uuid.NewString, time.Now)
	debtsUC := debts.NewUseCase(debtRepo, uuid.NewString, time.Now)

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
		Title:    "Comanda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		InventoryUC: inventoryUC,
		OrderingUC:  orderingUC,
		RecipesUC:   recipesUC,
		ImporterUC:  importerUC,
		FinanceUC:   financeUC,
		DebtsUC:     debtsUC,
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
