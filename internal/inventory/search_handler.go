package inventory

import (
	"fmt"
	"strings"

	"envanter-backend/internal/database"
	"envanter-backend/internal/models"
	"envanter-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

type SearchResult struct {
	ID     int64  `json:"id"`
	Serial int    `json:"serial"`
	Name   string `json:"name"`
	Stock  int    `json:"stock"`
}

type SearchResponse struct {
	Message string         `json:"message"`
	Results []SearchResult `json:"results"`
}

// GET /api/search?name=...&id=...&serial=...
// Verilen filtreler eşitlikle AND'lenir; hiçbir filtre verilmezse tüm
// ürünler döner.
func SearchProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Product{})

		if name := c.Query("name"); name != "" {
			dbq = dbq.Where("name_lower = ?", strings.ToLower(name))
		}
		if idStr := c.Query("id"); idStr != "" {
			var id int64
			if _, err := fmt.Sscan(idStr, &id); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "id geçersiz")
			}
			dbq = dbq.Where("id = ?", id)
		}
		if serialStr := c.Query("serial"); serialStr != "" {
			var serial int
			if _, err := fmt.Sscan(serialStr, &serial); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "serial geçersiz")
			}
			dbq = dbq.Where("serial = ?", serial)
		}

		var products []models.Product
		if err := dbq.Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Arama yapılamadı")
		}
		if len(products) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Sorguya uyan ürün bulunamadı")
		}

		results := make([]SearchResult, 0, len(products))
		for _, p := range products {
			totals, err := stock.TotalsFor(p.NameLower)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Stok hesaplanamadı")
			}
			results = append(results, SearchResult{
				ID:     p.ID,
				Serial: p.Serial,
				Name:   p.Name,
				Stock:  totals.Stock,
			})
		}

		return c.JSON(SearchResponse{
			Message: fmt.Sprintf("%d ürün bulundu", len(results)),
			Results: results,
		})
	}
}
