package stock

import (
	"fmt"

	"envanter-backend/internal/database"
	"envanter-backend/internal/models"
)

// Totals: bir ürünün alım/satış toplamları ve bunlardan türetilen stok.
type Totals struct {
	Purchased int `json:"purchased"`
	Sold      int `json:"sold"`
	Stock     int `json:"stock"`
}

// TotalsFor: stok her çağrıda loglardan yeniden hesaplanır, hiçbir yerde
// saklanmaz veya cache'lenmez. Eşleşen kayıt yoksa toplamlar sıfırdır.
func TotalsFor(nameLower string) (Totals, error) {
	var purchased int64
	if err := database.DB.Model(&models.Purchase{}).
		Where("name_lower = ?", nameLower).
		Select("COALESCE(SUM(qty), 0)").
		Scan(&purchased).Error; err != nil {
		return Totals{}, fmt.Errorf("alım toplamı hesaplanamadı: %w", err)
	}

	var sold int64
	if err := database.DB.Model(&models.Sale{}).
		Where("name_lower = ?", nameLower).
		Select("COALESCE(SUM(qty), 0)").
		Scan(&sold).Error; err != nil {
		return Totals{}, fmt.Errorf("satış toplamı hesaplanamadı: %w", err)
	}

	return Totals{
		Purchased: int(purchased),
		Sold:      int(sold),
		Stock:     int(purchased - sold),
	}, nil
}
