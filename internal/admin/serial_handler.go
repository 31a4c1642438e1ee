package admin

import (
	"strings"

	"envanter-backend/internal/config"
	"envanter-backend/internal/database"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type RenumberResponse struct {
	Message      string `json:"message"`
	TotalUpdated int    `json:"totalUpdated"`
}

// GET /api/re?secret=...
// Serial yoğunluk değişmezini isteğe bağlı olarak yeniden kurar; veri elden
// değiştirildiyse delete-product'ın kuyruğundaki adımın aynısını tek başına
// çalıştırır.
func RenumberSerialsHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		secretInput := strings.TrimSpace(c.Query("secret"))
		if secretInput == "" {
			return fiber.NewError(fiber.StatusBadRequest, "secret zorunlu")
		}
		if secretInput != cfg.Secret {
			return fiber.NewError(fiber.StatusForbidden, "Geçersiz secret")
		}

		total, err := renumberSerials()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Serial'lar güncellenemedi")
		}

		return c.JSON(RenumberResponse{
			Message:      "Serial numaraları güncellendi",
			TotalUpdated: total,
		})
	}
}

// renumberSerials: tüm ürünleri id sırasıyla okuyup serial'ları 1..N yapar.
// Döngü atomik değil: yeniden numaralandırma sırasında eklenen bir ürün
// atlanabilir ya da serial'ı ezilebilir (kabul edilen pencere).
func renumberSerials() (int, error) {
	var products []models.Product
	if err := database.DB.Order("id asc").Find(&products).Error; err != nil {
		return 0, err
	}

	for i := range products {
		if products[i].Serial == i+1 {
			continue
		}
		if err := database.DB.Model(&models.Product{}).
			Where("id = ?", products[i].ID).
			Update("serial", i+1).Error; err != nil {
			return 0, err
		}
	}

	return len(products), nil
}
