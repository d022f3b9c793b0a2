package api

import (
	"fmt"
	"testing"
	"time"
	"ucstore-api/internal/config"
	"ucstore-api/internal/database"
	"ucstore-api/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:memdb_api_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.Setting{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	prevDB := database.DB
	database.DB = db
	prevCfg := config.AppConfig
	config.AppConfig = &config.Config{
		YooKassaShopID:       "test-shop",
		YooKassaSecretKey:    "test-secret",
		YooKassaAPIURL:       "https://api.yookassa.ru",
		PaymentReturnURL:     "https://your-domain.com/success",
		SettingsCacheMinutes: 5,
	}
	t.Cleanup(func() {
		database.DB = prevDB
		config.AppConfig = prevCfg
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	r := gin.New()
	SetupRoutes(r)
	return r
}
