package inventory

import (
	"strconv"
	"strings"

	"envanter-backend/internal/database"
	"envanter-backend/internal/dates"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type PurchaseResponse struct {
	Message  string          `json:"message"`
	Purchase models.Purchase `json:"purchase"`
}

// GET /api/purchase?name=...&qty=...&price=...
// Bilinçli davranış: ürün kaydı olmayan bir isim için de alım yazılabilir,
// ürün varlığı kontrol edilmez.
func RecordPurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("name")
		qtyStr := c.Query("qty")
		priceStr := c.Query("price")
		if name == "" || qtyStr == "" || priceStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name, qty ve price zorunlu")
		}

		qty, err := strconv.Atoi(qtyStr)
		if err != nil || qty <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "qty pozitif tam sayı olmalı")
		}
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "price negatif olamaz")
		}

		purchase := models.Purchase{
			NameLower: strings.ToLower(name),
			Qty:       qty,
			Price:     price,
			Date:      dates.Today(),
		}
		if err := database.DB.Create(&purchase).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Alım kaydedilemedi")
		}

		return c.JSON(PurchaseResponse{Message: "Alım kaydedildi", Purchase: purchase})
	}
}
