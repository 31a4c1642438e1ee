package models

// Alım kaydı. Ürüne referansla değil, küçük harfe indirgenmiş isimle bağlanır.
// Append-only: tek tek güncellenmez ve silinmez, sadece ürün silinince
// topluca kaldırılır.
type Purchase struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	NameLower string  `gorm:"size:100;index" json:"nameLower"`
	Qty       int     `gorm:"not null" json:"qty"`
	Price     float64 `gorm:"not null" json:"price"`
	Date      string  `gorm:"size:30;index" json:"date"` // "02 January 2006" biçimi
}
