package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comanda-api/internal/application/catalog"
	"github.com/jhoicas/Comanda-api/internal/application/debts"
	"github.com/jhoicas/Comanda-api/internal/application/finance"
	"github.com/jhoicas/Comanda-api/internal/application/importer"
	"github.com/jhoicas/Comanda-api/internal/application/inventory"
	"github.com/jhoicas/Comanda-api/internal/application/ordering"
	"github.com/jhoicas/Comanda-api/internal/application/recipes"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *catalog.UseCase
	InventoryUC *inventory.UseCase
	OrderingUC  *ordering.UseCase
	RecipesUC   *recipes.UseCase
	ImporterUC  *importer.UseCase
	FinanceUC   *finance.UseCase
	DebtsUC     *debts.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	importHandler := NewImportHandler(deps.ImporterUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/import", importHandler.Import)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/active", productHandler.SetActive)

	// Almacén
	items := api.Group("/items")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	items.Get("/", inventoryHandler.ListItems)
	items.Post("/", inventoryHandler.CreateItem)
	items.Put("/:id", inventoryHandler.UpdateItem)
	items.Post("/:id/adjust", inventoryHandler.Adjust)
	api.Get("/inventory/movements", inventoryHandler.Movements)

	// Órdenes
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderingUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)

	// Recetas y costeo
	recipesGroup := api.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipesUC)
	recipesGroup.Get("/", recipeHandler.List)
	recipesGroup.Get("/:productId", recipeHandler.GetByProduct)
	recipesGroup.Post("/:productId", recipeHandler.Save)
	recipesGroup.Get("/:productId/cost", recipeHandler.UnitCost)

	// Finanzas
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	api.Get("/finance/reserve-today", financeHandler.ReserveToday)
	api.Get("/expenses", financeHandler.ListExpenses)
	api.Post("/expenses", financeHandler.CreateExpense)
	api.Get("/allocation-rules", financeHandler.ListRules)
	api.Post("/allocation-rules", financeHandler.CreateRule)
	api.Put("/allocation-rules/:id", financeHandler.UpdateRule)

	// Deudas
	debtsGroup := api.Group("/debts")
	debtHandler := NewDebtHandler(deps.DebtsUC)
	debtsGroup.Get("/", debtHandler.List)
	debtsGroup.Post("/", debtHandler.Create)
	debtsGroup.Get("/payments", debtHandler.ListPayments)
	debtsGroup.Post("/pay", debtHandler.Pay)
}
