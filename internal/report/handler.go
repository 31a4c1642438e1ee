package report

import (
	"envanter-backend/internal/database"
	"envanter-backend/internal/dates"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type Summary struct {
	TotalPurchasedQty    int     `json:"totalPurchasedQty"`
	TotalPurchasedAmount float64 `json:"totalPurchasedAmount"`
	TotalSoldQty         int     `json:"totalSoldQty"`
	TotalSalesAmount     float64 `json:"totalSalesAmount"`
	Profit               float64 `json:"profit"`
}

type Response struct {
	Type      string            `json:"type"`
	Purchases []models.Purchase `json:"purchases"`
	Sales     []models.Sale     `json:"sales"`
	Summary   Summary           `json:"summary"`
}

// GET /api/report?date=DD-MM-YY  veya  ?from=DD-MM-YY&to=DD-MM-YY
//
// Tarih karşılaştırması bilinçli olarak metinseldir: kayıtlar
// "DD MonthName YYYY" biçiminde saklanır ve aralık filtresi bu metin
// üzerinden >=/<= çalışır. Ay adları alfabetik karşılaştırıldığı için aralık
// ayı aştığında takvim sırasıyla örtüşmeyebilir; orijinal davranış korunuyor.
func Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dateStr := c.Query("date")
		fromStr := c.Query("from")
		toStr := c.Query("to")

		purchases := make([]models.Purchase, 0)
		sales := make([]models.Sale, 0)
		var reportType string

		switch {
		case dateStr != "":
			day, err := dates.ParseQuery(dateStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			reportType = day

			if err := database.DB.Where("date = ?", day).Find(&purchases).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Alımlar sorgulanamadı")
			}
			if err := database.DB.Where("date = ?", day).Find(&sales).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Satışlar sorgulanamadı")
			}

		case fromStr != "" && toStr != "":
			from, err := dates.ParseQuery(fromStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			to, err := dates.ParseQuery(toStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			reportType = from + " → " + to

			if err := database.DB.Where("date >= ? AND date <= ?", from, to).Find(&purchases).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Alımlar sorgulanamadı")
			}
			if err := database.DB.Where("date >= ? AND date <= ?", from, to).Find(&sales).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Satışlar sorgulanamadı")
			}

		default:
			return fiber.NewError(fiber.StatusBadRequest, "?date= ya da ?from= ve ?to= verilmeli")
		}

		var summary Summary
		for _, p := range purchases {
			summary.TotalPurchasedQty += p.Qty
			summary.TotalPurchasedAmount += float64(p.Qty) * p.Price
		}
		for _, s := range sales {
			summary.TotalSoldQty += s.Qty
			summary.TotalSalesAmount += float64(s.Qty) * s.Price
		}
		summary.Profit = summary.TotalSalesAmount - summary.TotalPurchasedAmount

		return c.JSON(Response{
			Type:      reportType,
			Purchases: purchases,
			Sales:     sales,
			Summary:   summary,
		})
	}
}
