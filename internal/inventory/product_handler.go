package inventory

import (
	"errors"
	"strings"

	"envanter-backend/internal/database"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AddProductResponse struct {
	Message string         `json:"message"`
	Product models.Product `json:"product"`
}

// GET /api/add-product?name=...
// Aynı isim (küçük harfe indirgenmiş) için idempotent: kayıt varsa aynen
// döner, yeni id tüketilmez.
func AddProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := strings.TrimSpace(c.Query("name"))
		if name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ürün adı eksik")
		}
		nameLower := strings.ToLower(name)

		var existing models.Product
		err := database.DB.Where("name_lower = ?", nameLower).First(&existing).Error
		if err == nil {
			return c.JSON(AddProductResponse{Message: "Ürün zaten kayıtlı", Product: existing})
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün sorgulanamadı")
		}

		// id = max+1 (ürün yoksa 1010), serial = max+1 (ürün yoksa 1).
		// Atama transaction içinde değil: eşzamanlı iki ekleme aynı değerleri
		// görebilir, kazanamayan taraf aşağıda unique ihlaliyle yakalanır.
		var maxID int64
		if err := database.DB.Model(&models.Product{}).
			Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün sorgulanamadı")
		}
		var maxSerial int
		if err := database.DB.Model(&models.Product{}).
			Select("COALESCE(MAX(serial), 0)").Scan(&maxSerial).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün sorgulanamadı")
		}

		product := models.Product{
			ID:        models.FirstProductID,
			Serial:    maxSerial + 1,
			Name:      name,
			NameLower: nameLower,
		}
		if maxID > 0 {
			product.ID = maxID + 1
		}

		if err := database.DB.Create(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Yarışı kaybeden taraf: aynı anda eklenen kayıt kazandı, onu döndür
				if err := database.DB.Where("name_lower = ?", nameLower).First(&existing).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Ürün okunamadı")
				}
				return c.JSON(AddProductResponse{Message: "Ürün zaten kayıtlıydı", Product: existing})
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün kaydedilemedi")
		}

		return c.JSON(AddProductResponse{Message: "Yeni ürün eklendi", Product: product})
	}
}
