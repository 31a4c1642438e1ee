package models

// İlk ürüne verilen id, sonrakiler max+1 ile devam eder
const FirstProductID = 1010

// Ürün id'si veritabanı tarafından değil uygulama tarafından atanır.
// Serial, id'ye göre artan sırada 1..N yoğun bir dizidir ve her ürün
// silindiğinde yeniden numaralandırılır.
type Product struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Serial    int    `gorm:"uniqueIndex" json:"serial"`
	Name      string `gorm:"size:100;not null" json:"name"`
	NameLower string `gorm:"size:100;not null;uniqueIndex" json:"nameLower"`
}
