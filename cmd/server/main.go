package main

import (
	"log"
	"strings"

	"satistakip-backend/internal/admin"
	"satistakip-backend/internal/auth"
	"satistakip-backend/internal/config"
	"satistakip-backend/internal/dashboard"
	"satistakip-backend/internal/database"
	"satistakip-backend/internal/executive"
	"satistakip-backend/internal/inventory"
	"satistakip-backend/internal/sales"
	"satistakip-backend/internal/state"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	// Snapshot store: kayıtlı durum varsa onunla, yoksa demo veriyle başlar
	store := state.NewStore(database.NewSnapshotBackend(database.DB, cfg.SnapshotKey))
	store.Load()

	app := fiber.New(fiber.Config{
		BodyLimit: 4 * 1024 * 1024, // logo yüklemesi için (2MB + multipart payı)
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register", auth.RegisterHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Post("/auth/google", auth.GoogleLoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// İşletme profili
	protected.Get("/business", admin.GetBusinessHandler(store))
	protected.Put("/business", admin.UpdateBusinessHandler(store))
	protected.Post("/business/logo", admin.UploadLogoHandler(store))
	protected.Delete("/business/logo", admin.DeleteLogoHandler(store))

	// Şube yönetimi
	protected.Post("/branches", admin.CreateBranchHandler(store))
	protected.Get("/branches", admin.ListBranchesHandler(store))
	protected.Put("/branches/:id", admin.UpdateBranchHandler(store))
	protected.Delete("/branches/:id", admin.DeleteBranchHandler(store))

	// Temsilci yönetimi
	protected.Post("/executives", executive.CreateExecutiveHandler(store))
	protected.Get("/executives", executive.ListExecutivesHandler(store))
	protected.Get("/executives/:id", executive.GetExecutiveHandler(store))
	protected.Put("/executives/:id", executive.UpdateExecutiveHandler(store))
	protected.Delete("/executives/:id", executive.DeleteExecutiveHandler(store))

	// Satışlar
	protected.Post("/sales", sales.CreateSaleHandler(store))
	protected.Get("/sales", sales.ListSalesHandler(store))
	protected.Get("/sales/export/csv", sales.ExportCSVHandler(store))
	protected.Get("/sales/export/xlsx", sales.ExportXLSXHandler(store))
	protected.Put("/sales/:id", sales.UpdateSaleHandler(store))
	protected.Delete("/sales/:id", sales.DeleteSaleHandler(store))

	// Envanter
	protected.Post("/inventory", inventory.CreateItemHandler(store))
	protected.Get("/inventory", inventory.ListItemsHandler(store))
	protected.Get("/inventory/summary", inventory.SummaryHandler(store))
	protected.Put("/inventory/:id", inventory.UpdateItemHandler(store))
	protected.Delete("/inventory/:id", inventory.DeleteItemHandler(store))

	// Kategoriler
	protected.Get("/categories", inventory.ListCategoriesHandler(store))
	protected.Post("/categories", inventory.CreateCategoryHandler(store))
	protected.Delete("/categories/:name", inventory.DeleteCategoryHandler(store))

	// Dashboard
	protected.Get("/dashboard/summary", dashboard.SummaryHandler(store))
	protected.Get("/dashboard/sales-by-executive", dashboard.SalesByExecutiveHandler(store))
	protected.Get("/dashboard/sales-trend", dashboard.SalesTrendHandler(store))
	protected.Get("/dashboard/product-contribution", dashboard.ProductContributionHandler(store))
	protected.Get("/dashboard/under-performers", dashboard.UnderPerformersHandler(store))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
