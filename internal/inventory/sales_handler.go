package inventory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"envanter-backend/internal/database"
	"envanter-backend/internal/dates"
	"envanter-backend/internal/models"
	"envanter-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SaleProductView struct {
	Name   string `json:"name"`
	ID     int64  `json:"id"`
	Serial int    `json:"serial"`
	Stock  int    `json:"stock"`
}

type SaleResponse struct {
	Message string          `json:"message"`
	Product SaleProductView `json:"product"`
}

// GET /api/sales?name=...&qty=...&price=...
// Alımın aksine ürün kaydı şarttır; stok yeterliliği satış yazılmadan önce
// türetilmiş stoktan kontrol edilir. Kontrol ile ekleme arasında kilit yok:
// eşzamanlı iki satış aynı stoğu görebilir (bilinen pencere).
func RecordSaleHandler() fiber.Handler {
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

		nameLower := strings.ToLower(name)

		var product models.Product
		if err := database.DB.Where("name_lower = ?", nameLower).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün sorgulanamadı")
		}

		totals, err := stock.TotalsFor(nameLower)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok hesaplanamadı")
		}
		if qty > totals.Stock {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Stok yetersiz. Mevcut: %d", totals.Stock))
		}

		sale := models.Sale{
			NameLower: nameLower,
			Qty:       qty,
			Price:     price,
			Date:      dates.Today(),
		}
		if err := database.DB.Create(&sale).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış kaydedilemedi")
		}

		return c.JSON(SaleResponse{
			Message: "Satış kaydedildi",
			Product: SaleProductView{
				Name:   product.Name,
				ID:     product.ID,
				Serial: product.Serial,
				Stock:  totals.Stock - qty,
			},
		})
	}
}
