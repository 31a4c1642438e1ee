package models

// Satış kaydı, alım kaydıyla aynı şekilde tutulur. Bir satış ancak
// türetilmiş stok yeterliyse yazılır; bu kontrol handler katmanında yapılır.
type Sale struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	NameLower string  `gorm:"size:100;index" json:"nameLower"`
	Qty       int     `gorm:"not null" json:"qty"`
	Price     float64 `gorm:"not null" json:"price"`
	Date      string  `gorm:"size:30;index" json:"date"`
}
