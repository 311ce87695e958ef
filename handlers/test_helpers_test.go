package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"propfinance_app_go/config"
	"propfinance_app_go/db"
	"propfinance_app_go/models"
	"propfinance_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared-memory name isolates tests while keeping a shared cache
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	if services.Storage == nil {
		services.Storage = services.NewLocalStorage(t.TempDir())
	}

	err = testDB.AutoMigrate(
		&models.County{},
		&models.Town{},
		&models.LocationService{},
		&models.Lead{},
		&models.CaseStudy{},
		&models.Guide{},
	)
	assert.NoError(t, err)

	// Handlers read the global DB
	db.DB = testDB

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set("config", &config.Config{
		Environment:   "test",
		SiteURL:       "https://oakbridgecapital.co.uk",
		EmailFrom:     "leads@oakbridgecapital.co.uk",
		EmailFromName: "Oakbridge Capital",
		LeadNotifyTo:  "deals@oakbridgecapital.co.uk",
		EmailTestMode: true,
	})

	return e, c, rec
}

func intToPtr(i int) *int {
	return &i
}
