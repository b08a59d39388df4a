package repository

import (
	"trueinvest_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

func (r *SettingRepository) FindAll() ([]model.AppSetting, error) {
	var settings []model.AppSetting
	err := r.DB.Find(&settings).Error
	return settings, err
}

func (r *SettingRepository) Get(key string) (*model.AppSetting, error) {
	var setting model.AppSetting
	err := r.DB.Where("`key` = ?", key).First(&setting).Error
	return &setting, err
}

// Set upserts a key/value pair.
func (r *SettingRepository) Set(key, value string) error {
	setting := model.AppSetting{Key: key, Value: value}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}
