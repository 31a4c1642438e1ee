package inventory_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"envanter-backend/internal/config"
	"envanter-backend/internal/database"
	"envanter-backend/internal/models"
	"envanter-backend/internal/server"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "topsecret"

// newTestApp: sqlite in-memory veritabanı üzerinde gerçek rotalarla uygulama
// kurar. Handler'lar global database.DB üzerinden çalıştığı için testler de
// onu değiştirir.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// :memory: veritabanı bağlantı başına ayrıdır, havuz tek bağlantıda kalmalı
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Purchase{}, &models.Sale{}))
	database.DB = db

	cfg := &config.Config{
		Secret:      testSecret,
		CORSOrigins: "*",
		ReadmePath:  "README.md",
	}
	return server.New(cfg)
}

func doGet(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
