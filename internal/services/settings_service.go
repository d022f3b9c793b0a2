package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"ucstore-api/internal/config"
	"ucstore-api/internal/database"
	"ucstore-api/pkg/logging"
)

// SettingsService reads project settings with a Redis cache in front of
// the database. The database is authoritative; cache failures degrade
// silently to direct reads.
type SettingsService struct{}

// NewSettingsService creates a new settings service instance
func NewSettingsService() *SettingsService {
	return &SettingsService{}
}

// GetSettings returns settings as a key/value map. With a key it returns a
// single entry (empty map for an unknown key); without, all settings.
func (s *SettingsService) GetSettings(ctx context.Context, key string) (map[string]string, error) {
	cacheKey := settingsCacheKey(key)

	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	result := make(map[string]string)

	if key != "" {
		setting, err := database.GetSettingByKey(key)
		if err != nil {
			return nil, fmt.Errorf("failed to load setting: %w", err)
		}
		if setting != nil {
			result[setting.SettingKey] = setting.SettingValue
		}
	} else {
		settings, err := database.GetAllSettings()
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		for _, setting := range settings {
			result[setting.SettingKey] = setting.SettingValue
		}
	}

	s.toCache(ctx, cacheKey, result)
	return result, nil
}

func settingsCacheKey(key string) string {
	if key == "" {
		return "settings:all"
	}
	return "settings:key:" + key
}

func (s *SettingsService) fromCache(ctx context.Context, cacheKey string) (map[string]string, bool) {
	if database.RedisClient == nil {
		return nil, false
	}

	raw, err := database.GetCache(ctx, cacheKey)
	if err != nil {
		return nil, false
	}

	var result map[string]string
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false
	}
	return result, true
}

func (s *SettingsService) toCache(ctx context.Context, cacheKey string, result map[string]string) {
	if database.RedisClient == nil {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return
	}

	ttl := time.Duration(config.AppConfig.SettingsCacheMinutes) * time.Minute
	if err := database.SetCache(ctx, cacheKey, raw, ttl); err != nil {
		logging.Warnf("Failed to cache settings: %v", err)
	}
}
