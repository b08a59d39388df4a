package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/repository"
	"trueinvest_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GoalService owns the goal catalog, the completion log and every ledger
// mutation tied to it. Event writes and point updates always share one
// transaction.

type GoalService struct {
	GoalRepo     *repository.GoalRepository
	EventRepo    *repository.GoalEventRepository
	UserRepo     *repository.UserRepository
	Ranking      *RankingService
	Achievements *AchievementService
	DB           *gorm.DB
}

func NewGoalService(
	goalRepo *repository.GoalRepository,
	eventRepo *repository.GoalEventRepository,
	userRepo *repository.UserRepository,
	ranking *RankingService,
	achievements *AchievementService,
	db *gorm.DB,
) *GoalService {
	return &GoalService{
		GoalRepo:     goalRepo,
		EventRepo:    eventRepo,
		UserRepo:     userRepo,
		Ranking:      ranking,
		Achievements: achievements,
		DB:           db,
	}
}

type GoalRequest struct {
	Title        string           `json:"title" binding:"required"`
	Description  string           `json:"description"`
	Category     string           `json:"category" binding:"required"`
	TargetValue  int              `json:"targetValue" binding:"required"`
	RewardPoints int              `json:"rewardPoints" binding:"required"`
	Period       model.GoalPeriod `json:"period" binding:"required,oneof=daily weekly monthly"`
	Kind         model.GoalKind   `json:"kind" binding:"required,oneof=one_time recurring"`
	Active       *bool            `json:"active"`
}

// GoalStatus pairs a goal with the caller's completion state.
type GoalStatus struct {
	model.Goal
	Completions int64 `json:"completions"`
	Completed   bool  `json:"completed"`
}

// ValidateGoalRequest enforces catalog constraints before any write.
func ValidateGoalRequest(req *GoalRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return errors.New("title must not be empty")
	}
	if len(title) > 200 {
		return errors.New("title must be at most 200 characters")
	}
	if len(req.Description) > 2000 {
		return errors.New("description must be at most 2000 characters")
	}
	if req.TargetValue <= 0 {
		return errors.New("targetValue must be a positive integer")
	}
	if req.RewardPoints <= 0 {
		return errors.New("rewardPoints must be a positive integer")
	}
	return nil
}

func (s *GoalService) CreateGoal(req GoalRequest) (*model.Goal, error) {
	if err := ValidateGoalRequest(&req); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	goal := &model.Goal{
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Category:     req.Category,
		TargetValue:  req.TargetValue,
		RewardPoints: req.RewardPoints,
		Period:       req.Period,
		Kind:         req.Kind,
		Active:       active,
	}

	if err := s.GoalRepo.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) UpdateGoal(id uint, req GoalRequest) (*model.Goal, error) {
	if err := ValidateGoalRequest(&req); err != nil {
		return nil, err
	}

	goal, err := s.GoalRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrGoalNotFound
	}

	goal.Title = strings.TrimSpace(req.Title)
	goal.Description = req.Description
	goal.Category = req.Category
	goal.TargetValue = req.TargetValue
	goal.RewardPoints = req.RewardPoints
	goal.Period = req.Period
	goal.Kind = req.Kind
	if req.Active != nil {
		goal.Active = *req.Active
	}

	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// DeleteGoal removes the goal's event log and the goal itself in one
// transaction, so no orphaned events can survive a partial failure.
// Points already awarded for past completions are kept.
func (s *GoalService) DeleteGoal(ctx context.Context, id uint) error {
	if _, err := s.GoalRepo.FindByID(id); err != nil {
		return util.ErrGoalNotFound
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("goal_id = ?", id).Delete(&model.GoalEvent{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.Goal{}, id).Error
	})
}

func (s *GoalService) ListActiveGoals() ([]model.Goal, error) {
	return s.GoalRepo.FindActive()
}

func (s *GoalService) ListAllGoals() ([]model.Goal, error) {
	return s.GoalRepo.FindAll()
}

// ListGoalsForUser returns the active catalog annotated with the user's
// completion counts.
func (s *GoalService) ListGoalsForUser(userID uint) ([]GoalStatus, error) {
	goals, err := s.GoalRepo.FindActive()
	if err != nil {
		return nil, err
	}

	counts, err := s.EventRepo.CountsForUser(userID)
	if err != nil {
		return nil, err
	}

	statuses := make([]GoalStatus, len(goals))
	for i, g := range goals {
		n := counts[g.ID]
		statuses[i] = GoalStatus{
			Goal:        g,
			Completions: n,
			Completed:   g.Kind == model.GoalOneTime && n > 0,
		}
	}
	return statuses, nil
}

func (s *GoalService) ListEventsForUser(userID uint) ([]model.GoalEvent, error) {
	return s.EventRepo.FindByUser(userID)
}

// CompleteGoal marks one completion. One-time goals accept a single
// completion per user; recurring goals accept any number. The event
// insert and the point award commit or roll back together, and the
// awarded amount snapshots the goal's reward at completion time.
func (s *GoalService) CompleteGoal(ctx context.Context, userID, goalID uint) (*model.GoalEvent, error) {
	goal, err := s.GoalRepo.FindByID(goalID)
	if err != nil {
		return nil, util.ErrGoalNotFound
	}
	if !goal.Active {
		return nil, util.ErrGoalInactive
	}

	event := &model.GoalEvent{
		UserID:        userID,
		GoalID:        goalID,
		PointsAwarded: goal.RewardPoints,
		CompletedAt:   time.Now(),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if goal.Kind == model.GoalOneTime {
			var n int64
			err := tx.Model(&model.GoalEvent{}).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("user_id = ? AND goal_id = ?", userID, goalID).
				Count(&n).Error
			if err != nil {
				return err
			}
			if n > 0 {
				return util.ErrGoalAlreadyCompleted
			}
		}

		if err := tx.Create(event).Error; err != nil {
			return err
		}
		return awardPoints(tx, userID, goal.RewardPoints)
	})
	if err != nil {
		return nil, err
	}

	s.Ranking.Invalidate(ctx)
	s.Achievements.CheckPointMilestones(ctx, userID)
	return event, nil
}

// UndoGoal reverts the most recent completion of the goal by the user:
// the latest event (by completion time, id as tiebreaker) is deleted and
// exactly its snapshotted points are revoked.
func (s *GoalService) UndoGoal(ctx context.Context, userID, goalID uint) error {
	if _, err := s.GoalRepo.FindByID(goalID); err != nil {
		return util.ErrGoalNotFound
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var event model.GoalEvent
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND goal_id = ?", userID, goalID).
			Order("completed_at DESC, id DESC").
			First(&event).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNothingToUndo
		}
		if err != nil {
			return err
		}

		if err := tx.Unscoped().Delete(&model.GoalEvent{}, event.ID).Error; err != nil {
			return err
		}
		return revokePoints(tx, userID, event.PointsAwarded)
	})
	if err != nil {
		return err
	}

	s.Ranking.Invalidate(ctx)
	return nil
}
