package services

import (
	"fmt"
	"testing"
	"time"
	"ucstore-api/internal/config"
	"ucstore-api/internal/database"
	"ucstore-api/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:memdb_%d?mode=memory&cache=shared", time.Now().UnixNano())
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
	t.Cleanup(func() {
		database.DB = prevDB
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func setupTestConfig(t *testing.T) {
	t.Helper()

	prev := config.AppConfig
	config.AppConfig = &config.Config{
		YooKassaShopID:       "test-shop",
		YooKassaSecretKey:    "test-secret",
		YooKassaAPIURL:       "https://api.yookassa.ru",
		PaymentReturnURL:     "https://your-domain.com/success",
		SettingsCacheMinutes: 5,
	}
	t.Cleanup(func() { config.AppConfig = prev })
}
