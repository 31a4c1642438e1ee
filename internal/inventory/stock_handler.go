package inventory

import (
	"strings"

	"envanter-backend/internal/database"
	"envanter-backend/internal/models"
	"envanter-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

type StockRow struct {
	Name      string `json:"name"`
	ID        int64  `json:"id"`
	Serial    int    `json:"serial"`
	Purchased int    `json:"purchased"`
	Sold      int    `json:"sold"`
	Stock     int    `json:"stock"`
}

func buildStockRows(products []models.Product) ([]StockRow, error) {
	rows := make([]StockRow, 0, len(products))
	for _, p := range products {
		totals, err := stock.TotalsFor(p.NameLower)
		if err != nil {
			return nil, err
		}
		rows = append(rows, StockRow{
			Name:      p.Name,
			ID:        p.ID,
			Serial:    p.Serial,
			Purchased: totals.Purchased,
			Sold:      totals.Sold,
			Stock:     totals.Stock,
		})
	}
	return rows, nil
}

// GET /api/stock?name=...
// name verilmezse tüm ürünler döner; bilinmeyen bir isim boş liste döndürür,
// hata değil.
func StockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Product{})
		if name := c.Query("name"); name != "" {
			dbq = dbq.Where("name_lower = ?", strings.ToLower(name))
		}

		var products []models.Product
		if err := dbq.Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		rows, err := buildStockRows(products)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok hesaplanamadı")
		}
		return c.JSON(rows)
	}
}

// GET /api/product-summary
func ProductSummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		rows, err := buildStockRows(products)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok hesaplanamadı")
		}
		return c.JSON(rows)
	}
}
