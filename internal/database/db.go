package database

import (
	"log"

	"envanter-backend/internal/config"
	"envanter-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	// TranslateError: unique ihlallerini gorm.ErrDuplicatedKey olarak
	// yakalayabilmek için açık
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	if err := DB.AutoMigrate(
		&models.Product{},
		&models.Purchase{},
		&models.Sale{},
	); err != nil {
		log.Fatalf("AutoMigrate başarısız: %v", err)
	}

	log.Println("Veritabanı bağlantısı hazır")
}
