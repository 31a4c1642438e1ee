package admin

import (
	"errors"
	"fmt"
	"strings"

	"envanter-backend/internal/config"
	"envanter-backend/internal/database"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DeleteProductResponse struct {
	Message          string `json:"message"`
	DeletedID        int64  `json:"deletedId"`
	PurchasesDeleted int64  `json:"purchasesDeleted"`
	SalesDeleted     int64  `json:"salesDeleted"`
	TotalRemaining   int    `json:"totalRemaining"`
}

// GET /api/delete-product?name=...&secret=...
// Ürünle birlikte tüm alım/satış geçmişi silinir; ardından kalan ürünlerin
// serial'ları id sırasına göre 1..N olacak şekilde yeniden atanır. Serial
// yoğunluğunu koruyan tek işlem budur, o yüzden ilgisiz ürünlere de dokunur.
func DeleteProductHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := strings.ToLower(strings.TrimSpace(c.Query("name")))
		secretInput := strings.TrimSpace(c.Query("secret"))
		if name == "" || secretInput == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ürün adı veya secret eksik")
		}
		if secretInput != cfg.Secret {
			return fiber.NewError(fiber.StatusForbidden, "Geçersiz secret")
		}

		var product models.Product
		if err := database.DB.Where("name_lower = ?", name).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün sorgulanamadı")
		}

		if err := database.DB.Delete(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}

		// Transaction yok: silme adımları arasında araya giren bir okuma
		// yarım silinmiş durumu görebilir (kabul edilen pencere)
		delPurchases := database.DB.Where("name_lower = ?", name).Delete(&models.Purchase{})
		if delPurchases.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Alım kayıtları silinemedi")
		}
		delSales := database.DB.Where("name_lower = ?", name).Delete(&models.Sale{})
		if delSales.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış kayıtları silinemedi")
		}

		totalRemaining, err := renumberSerials()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Serial'lar güncellenemedi")
		}

		return c.JSON(DeleteProductResponse{
			Message:          fmt.Sprintf("\"%s\" ürünü ve bağlı kayıtları silindi", product.Name),
			DeletedID:        product.ID,
			PurchasesDeleted: delPurchases.RowsAffected,
			SalesDeleted:     delSales.RowsAffected,
			TotalRemaining:   totalRemaining,
		})
	}
}

// GET /api/delete-all?secret=...
// Üç koleksiyon da koşulsuz temizlenir.
func DeleteAllHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Query("secret")) != cfg.Secret {
			return fiber.NewError(fiber.StatusForbidden, "Yetkisiz")
		}

		if err := database.DB.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler silinemedi")
		}
		if err := database.DB.Where("1 = 1").Delete(&models.Purchase{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Alım kayıtları silinemedi")
		}
		if err := database.DB.Where("1 = 1").Delete(&models.Sale{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış kayıtları silinemedi")
		}

		return c.JSON(fiber.Map{"message": "Tüm veriler silindi"})
	}
}
