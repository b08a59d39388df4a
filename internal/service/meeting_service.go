package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/repository"
	"trueinvest_backend/internal/util"

	"gorm.io/gorm"
)

type MeetingService struct {
	MeetingRepo *repository.MeetingRepository
	UserRepo    *repository.UserRepository
	DB          *gorm.DB
}

func NewMeetingService(meetingRepo *repository.MeetingRepository, userRepo *repository.UserRepository, db *gorm.DB) *MeetingService {
	return &MeetingService{MeetingRepo: meetingRepo, UserRepo: userRepo, DB: db}
}

type MeetingRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
}

func (s *MeetingService) ValidateMeetingRequest(req *MeetingRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return errors.New("title must not be empty")
	}
	if len(req.Title) > 255 {
		return errors.New("title must be at most 255 characters")
	}
	if len(req.Description) > 2000 {
		return errors.New("description must be at most 2000 characters")
	}
	if req.ScheduledAt.Before(time.Now()) {
		return errors.New("scheduledAt must be in the future")
	}
	return nil
}

// CreateMeeting schedules a meeting and fans out a notification to every
// user in the same transaction, so a notified meeting always exists.
func (s *MeetingService) CreateMeeting(req *MeetingRequest, createdBy uint) (*model.Meeting, error) {
	if err := s.ValidateMeetingRequest(req); err != nil {
		return nil, err
	}

	meeting := &model.Meeting{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Status:      model.MeetingScheduled,
		ScheduledAt: req.ScheduledAt,
		CreatedBy:   createdBy,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meeting).Error; err != nil {
			return err
		}
		return s.notifyAll(tx, meeting, model.NotificationMeeting,
			"Nova reunião agendada",
			fmt.Sprintf("%s em %s", meeting.Title, meeting.ScheduledAt.Format("02/01/2006 15:04")))
	})
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

// CancelMeeting flips a scheduled meeting to cancelled and notifies
// everyone. Cancelling an already cancelled or past meeting is rejected.
func (s *MeetingService) CancelMeeting(meetingID uint) (*model.Meeting, error) {
	meeting, err := s.MeetingRepo.FindByID(meetingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrMeetingNotFound
	}
	if err != nil {
		return nil, err
	}
	if meeting.Status != model.MeetingScheduled {
		return nil, util.ErrMeetingNotFound
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(meeting).Update("status", model.MeetingCancelled).Error; err != nil {
			return err
		}
		meeting.Status = model.MeetingCancelled
		return s.notifyAll(tx, meeting, model.NotificationMeetingCancelled,
			"Reunião cancelada",
			fmt.Sprintf("%s foi cancelada", meeting.Title))
	})
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

func (s *MeetingService) notifyAll(tx *gorm.DB, meeting *model.Meeting, typ model.NotificationType, title, message string) error {
	var userIDs []uint
	if err := tx.Model(&model.User{}).Pluck("id", &userIDs).Error; err != nil {
		return err
	}
	notifications := make([]model.Notification, 0, len(userIDs))
	for _, id := range userIDs {
		notifications = append(notifications, model.Notification{
			UserID:      id,
			Type:        typ,
			Title:       title,
			Message:     message,
			ReferenceID: meeting.ID,
		})
	}
	if len(notifications) == 0 {
		return nil
	}
	return tx.CreateInBatches(notifications, 100).Error
}

func (s *MeetingService) ListUpcoming() ([]model.Meeting, error) {
	return s.MeetingRepo.FindUpcoming()
}

func (s *MeetingService) ListAll() ([]model.Meeting, error) {
	return s.MeetingRepo.FindAll()
}
