package repository

import (
	"trueinvest_backend/internal/model"

	"gorm.io/gorm"
)

type TimeEntryRepository struct {
	DB *gorm.DB
}

func NewTimeEntryRepository(db *gorm.DB) *TimeEntryRepository {
	return &TimeEntryRepository{DB: db}
}

func (r *TimeEntryRepository) Create(entry *model.TimeEntry) error {
	return r.DB.Create(entry).Error
}

func (r *TimeEntryRepository) Update(entry *model.TimeEntry) error {
	return r.DB.Save(entry).Error
}

func (r *TimeEntryRepository) FindByUserAndDate(userID uint, date string) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	err := r.DB.Where("user_id = ? AND entry_date = ?", userID, date).First(&entry).Error
	return &entry, err
}

func (r *TimeEntryRepository) FindByUser(userID uint, limit int) ([]model.TimeEntry, error) {
	var entries []model.TimeEntry
	err := r.DB.Where("user_id = ?", userID).Order("entry_date DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
