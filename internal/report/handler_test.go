package report_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"envanter-backend/internal/config"
	"envanter-backend/internal/database"
	"envanter-backend/internal/models"
	"envanter-backend/internal/report"
	"envanter-backend/internal/server"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Purchase{}, &models.Sale{}))
	database.DB = db

	return server.New(&config.Config{Secret: "topsecret", CORSOrigins: "*", ReadmePath: "README.md"})
}

func getReport(t *testing.T, app *fiber.App, path string) (*http.Response, report.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body report.Response
	if resp.StatusCode == http.StatusOK {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	}
	return resp, body
}

func seedLogs(t *testing.T) {
	t.Helper()
	purchases := []models.Purchase{
		{NameLower: "rice", Qty: 10, Price: 50, Date: "01 June 2024"},
		{NameLower: "rice", Qty: 5, Price: 52, Date: "02 June 2024"},
		{NameLower: "flour", Qty: 3, Price: 10, Date: "01 June 2024"},
	}
	require.NoError(t, database.DB.Create(&purchases).Error)

	sales := []models.Sale{
		{NameLower: "rice", Qty: 4, Price: 70, Date: "01 June 2024"},
		{NameLower: "flour", Qty: 1, Price: 15, Date: "03 June 2024"},
	}
	require.NoError(t, database.DB.Create(&sales).Error)
}

func TestReportSingleDay(t *testing.T) {
	app := newTestApp(t)
	seedLogs(t)

	// Girdi DD-MM-YY, saklanan biçimle metinsel eşitlikten eşleşir
	resp, body := getReport(t, app, "/api/report?date=01-06-24")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "01 June 2024", body.Type)
	require.Len(t, body.Purchases, 2)
	require.Len(t, body.Sales, 1)

	assert.Equal(t, 13, body.Summary.TotalPurchasedQty)
	assert.Equal(t, 530.0, body.Summary.TotalPurchasedAmount) // 10*50 + 3*10
	assert.Equal(t, 4, body.Summary.TotalSoldQty)
	assert.Equal(t, 280.0, body.Summary.TotalSalesAmount) // 4*70
	assert.Equal(t, -250.0, body.Summary.Profit)
}

func TestReportRange(t *testing.T) {
	app := newTestApp(t)
	seedLogs(t)

	resp, body := getReport(t, app, "/api/report?from=01-06-24&to=02-06-24")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "01 June 2024 → 02 June 2024", body.Type)
	assert.Len(t, body.Purchases, 3)
	// "03 June 2024" aralık dışında kalır
	assert.Len(t, body.Sales, 1)
}

func TestReportInvalidMonthMatchesNothing(t *testing.T) {
	app := newTestApp(t)
	seedLogs(t)

	// Aralık dışı ay hataya değil "Invalid" ay adına gider, sonuç boş döner
	resp, body := getReport(t, app, "/api/report?date=01-13-24")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "01 Invalid 2024", body.Type)
	assert.Empty(t, body.Purchases)
	assert.Empty(t, body.Sales)
}

func TestReportMissingRange(t *testing.T) {
	app := newTestApp(t)

	resp, _ := getReport(t, app, "/api/report")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// from tek başına yeterli değil
	resp, _ = getReport(t, app, "/api/report?from=01-06-24")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
