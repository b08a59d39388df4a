package service

import (
	"errors"
	"strings"
	"time"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/repository"
	"trueinvest_backend/internal/util"

	"gorm.io/gorm"
)

type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
}

func NewActivityService(activityRepo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{ActivityRepo: activityRepo}
}

type ActivityRequest struct {
	Type          string     `json:"type" binding:"required"`
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	ClientName    string     `json:"clientName"`
	ClientContact string     `json:"clientContact"`
	PointsEarned  int        `json:"pointsEarned"`
	OccurredAt    *time.Time `json:"occurredAt"`
}

func (s *ActivityService) validate(req *ActivityRequest) error {
	req.Type = strings.TrimSpace(req.Type)
	req.Title = strings.TrimSpace(req.Title)
	if req.Type == "" {
		return errors.New("type must not be empty")
	}
	if req.Title == "" {
		return errors.New("title must not be empty")
	}
	if len(req.Title) > 255 {
		return errors.New("title must be at most 255 characters")
	}
	if req.PointsEarned < 0 {
		return errors.New("pointsEarned must not be negative")
	}
	return nil
}

func (s *ActivityService) CreateActivity(userID uint, req *ActivityRequest) (*model.Activity, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	occurredAt := time.Now()
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}
	activity := &model.Activity{
		UserID:        userID,
		Type:          req.Type,
		Title:         req.Title,
		Description:   req.Description,
		ClientName:    req.ClientName,
		ClientContact: req.ClientContact,
		PointsEarned:  req.PointsEarned,
		Status:        "done",
		OccurredAt:    occurredAt,
	}
	if err := s.ActivityRepo.Create(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// DeleteActivity removes the caller's own activity. Admins may delete any.
func (s *ActivityService) DeleteActivity(activityID, callerID uint, isAdmin bool) error {
	activity, err := s.ActivityRepo.FindByID(activityID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrActivityNotFound
	}
	if err != nil {
		return err
	}
	if activity.UserID != callerID && !isAdmin {
		return util.ErrPermissionDenied
	}
	return s.ActivityRepo.Delete(activityID)
}

func (s *ActivityService) ListForUser(userID uint) ([]model.Activity, error) {
	return s.ActivityRepo.FindByUser(userID)
}

func (s *ActivityService) ListAll() ([]model.Activity, error) {
	return s.ActivityRepo.FindAll()
}
