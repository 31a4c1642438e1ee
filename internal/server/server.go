package server

import (
	"log"
	"strings"

	"envanter-backend/internal/admin"
	"envanter-backend/internal/config"
	"envanter-backend/internal/docs"
	"envanter-backend/internal/inventory"
	"envanter-backend/internal/report"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// New: fiber uygulamasını kurar ve tüm rotaları bağlar. main dışında
// testlerin de aynı uygulamayı ayağa kaldırabilmesi için ayrı pakette.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Beklenmeyen hata:", err)
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
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,OPTIONS",
	}))

	app.Get("/", docs.ReadmeHandler(cfg))

	api := app.Group("/api")

	// Ürün & stok
	api.Get("/add-product", inventory.AddProductHandler())
	api.Get("/purchase", inventory.RecordPurchaseHandler())
	api.Get("/sales", inventory.RecordSaleHandler())
	api.Get("/stock", inventory.StockHandler())
	api.Get("/product-summary", inventory.ProductSummaryHandler())
	api.Get("/search", inventory.SearchProductsHandler())

	// Raporlama
	api.Get("/report", report.Handler())

	// Yıkıcı işlemler (secret ile korunur)
	api.Get("/delete-product", admin.DeleteProductHandler(cfg))
	api.Get("/delete-all", admin.DeleteAllHandler(cfg))
	api.Get("/re", admin.RenumberSerialsHandler(cfg))

	return app
}
