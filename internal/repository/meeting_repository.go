package repository

import (
	"time"
	"trueinvest_backend/internal/model"

	"gorm.io/gorm"
)

type MeetingRepository struct {
	DB *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{DB: db}
}

func (r *MeetingRepository) Create(meeting *model.Meeting) error {
	return r.DB.Create(meeting).Error
}

func (r *MeetingRepository) Update(meeting *model.Meeting) error {
	return r.DB.Save(meeting).Error
}

func (r *MeetingRepository) FindByID(id uint) (*model.Meeting, error) {
	var meeting model.Meeting
	err := r.DB.First(&meeting, id).Error
	return &meeting, err
}

func (r *MeetingRepository) FindUpcoming() ([]model.Meeting, error) {
	var meetings []model.Meeting
	err := r.DB.Where("status = ? AND scheduled_at >= ?", model.MeetingScheduled, time.Now()).
		Order("scheduled_at").
		Find(&meetings).Error
	return meetings, err
}

func (r *MeetingRepository) FindAll() ([]model.Meeting, error) {
	var meetings []model.Meeting
	err := r.DB.Order("scheduled_at DESC").Find(&meetings).Error
	return meetings, err
}
