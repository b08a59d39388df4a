package service

import (
	"errors"
	"time"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/repository"
	"trueinvest_backend/internal/util"

	"gorm.io/gorm"
)

// AttendanceService keeps one time entry per user per day: clock-in
// opens it, clock-out closes it.

type AttendanceService struct {
	EntryRepo *repository.TimeEntryRepository
}

func NewAttendanceService(entryRepo *repository.TimeEntryRepository) *AttendanceService {
	return &AttendanceService{EntryRepo: entryRepo}
}

func entryDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func (s *AttendanceService) ClockIn(userID uint, location string) (*model.TimeEntry, error) {
	now := time.Now()

	_, err := s.EntryRepo.FindByUserAndDate(userID, entryDate(now))
	if err == nil {
		return nil, util.ErrAlreadyClockedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := &model.TimeEntry{
		UserID:          userID,
		EntryDate:       entryDate(now),
		ClockIn:         now,
		ClockInLocation: location,
	}
	if err := s.EntryRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *AttendanceService) ClockOut(userID uint, location string) (*model.TimeEntry, error) {
	now := time.Now()

	entry, err := s.EntryRepo.FindByUserAndDate(userID, entryDate(now))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotClockedIn
	}
	if err != nil {
		return nil, err
	}
	if entry.ClockOut != nil {
		return nil, util.ErrNotClockedIn
	}

	entry.ClockOut = &now
	entry.ClockOutLocation = location
	if err := s.EntryRepo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Today returns the current day's entry, or nil when the user has not
// clocked in yet.
func (s *AttendanceService) Today(userID uint) (*model.TimeEntry, error) {
	entry, err := s.EntryRepo.FindByUserAndDate(userID, entryDate(time.Now()))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *AttendanceService) History(userID uint, limit int) ([]model.TimeEntry, error) {
	if limit <= 0 || limit > 90 {
		limit = 30
	}
	return s.EntryRepo.FindByUser(userID, limit)
}
