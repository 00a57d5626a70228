package repository

import (
	"errors"

	"github.com/scentlab/scentlab/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository runtime setting data access interface
type SettingRepository interface {
	Get(key string) (*models.Setting, error)
	List() ([]models.Setting, error)
	Upsert(key, value string) error
	Delete(key string) error
}

// GormSettingRepository GORM implementation
type GormSettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates the setting repository
func NewSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// Get fetches a setting by key
func (r *GormSettingRepository) Get(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// List lists all settings
func (r *GormSettingRepository) List() ([]models.Setting, error) {
	var settings []models.Setting
	if err := r.db.Order("key ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// Upsert inserts or overwrites a setting value
func (r *GormSettingRepository) Upsert(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

// Delete removes a setting
func (r *GormSettingRepository) Delete(key string) error {
	return r.db.Where("key = ?", key).Delete(&models.Setting{}).Error
}
