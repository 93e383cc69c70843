package repositories

import (
	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/models"
	"gorm.io/gorm/clause"
)

// SettingRepository handles database operations for provider settings
type SettingRepository struct{}

// NewSettingRepository creates a new setting repository instance
func NewSettingRepository() *SettingRepository {
	return &SettingRepository{}
}

// FindAll retrieves every setting
func (r *SettingRepository) FindAll() ([]models.Setting, error) {
	var settings []models.Setting
	result := database.DB.Order("key asc").Find(&settings)
	return settings, result.Error
}

// Upsert creates or replaces the value for one key
func (r *SettingRepository) Upsert(setting models.Setting) error {
	result := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
	}).Create(&setting)
	return result.Error
}
