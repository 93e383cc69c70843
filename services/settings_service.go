package services

import (
	"github.com/limayamil/flowsync/dto"
	"github.com/limayamil/flowsync/models"
	"github.com/limayamil/flowsync/repositories"
)

// SettingsService handles provider-wide settings.
type SettingsService struct {
	settingRepo *repositories.SettingRepository
}

// NewSettingsService creates a new settings service instance
func NewSettingsService() *SettingsService {
	return &SettingsService{
		settingRepo: repositories.NewSettingRepository(),
	}
}

// GetSettings returns every setting as a key/value map.
func (s *SettingsService) GetSettings() (map[string]string, error) {
	settings, err := s.settingRepo.FindAll()
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(settings))
	for _, setting := range settings {
		out[setting.Key] = setting.Value
	}
	return out, nil
}

// UpdateSetting creates or replaces one setting key.
func (s *SettingsService) UpdateSetting(req dto.UpdateSettingRequest, actor Actor) error {
	return s.settingRepo.Upsert(models.Setting{
		Key:       req.Key,
		Value:     req.Value,
		UpdatedBy: actor.ID,
	})
}
