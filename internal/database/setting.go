package database

import (
	"ucstore-api/internal/models"

	"gorm.io/gorm"
)

// GetAllSettings returns every settings row
func GetAllSettings() ([]models.Setting, error) {
	var settings []models.Setting
	err := DB.Find(&settings).Error
	return settings, err
}

// GetSettingByKey returns a single setting, or nil if the key is unknown
func GetSettingByKey(key string) (*models.Setting, error) {
	var setting models.Setting
	err := DB.Where("setting_key = ?", key).First(&setting).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}
