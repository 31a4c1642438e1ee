package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	CORSOrigins string
	Secret      string // Yıkıcı uçlar için yetki anahtarı, SecretFile'dan okunur
	SecretFile  string
	ReadmePath  string
}

func Load() *Config {
	// .env varsa yükle; container ortamında env'ler zaten hazır gelir
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env bulunamadı, ortam değişkenleri kullanılıyor")
	}

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "3000"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=envanter port=5432 sslmode=disable"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		SecretFile:  getEnv("SECRET_FILE", "CRX.txt"),
		ReadmePath:  getEnv("README_PATH", "README.md"),
	}

	// Secret dosyası başlangıçta bir kez okunur, istek başına tekrar okunmaz
	data, err := os.ReadFile(cfg.SecretFile)
	if err != nil {
		log.Fatalf("[FATAL] Secret dosyası okunamadı (%s): %v", cfg.SecretFile, err)
	}
	cfg.Secret = strings.TrimSpace(string(data))
	if cfg.Secret == "" {
		log.Fatalf("[FATAL] Secret dosyası boş (%s), silme uçları korumasız kalır", cfg.SecretFile)
	}

	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=envanter port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN varsayılan değerde, production için kendi bağlantını tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
