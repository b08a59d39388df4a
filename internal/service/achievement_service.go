package service

import (
	"context"
	"time"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/repository"
	"trueinvest_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
	UserRepo        *repository.UserRepository
	Ranking         *RankingService
	DB              *gorm.DB
}

func NewAchievementService(
	achievementRepo *repository.AchievementRepository,
	userRepo *repository.UserRepository,
	ranking *RankingService,
	db *gorm.DB,
) *AchievementService {
	return &AchievementService{
		AchievementRepo: achievementRepo,
		UserRepo:        userRepo,
		Ranking:         ranking,
		DB:              db,
	}
}

// UserBadge is an achievement annotated with the caller's unlock state.
type UserBadge struct {
	model.Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

func (s *AchievementService) ListForUser(userID uint) ([]UserBadge, error) {
	achievements, err := s.AchievementRepo.FindAll()
	if err != nil {
		return nil, err
	}

	unlocked, err := s.AchievementRepo.FindUnlockedByUser(userID)
	if err != nil {
		return nil, err
	}

	unlockedAt := make(map[uint]time.Time, len(unlocked))
	for _, ua := range unlocked {
		unlockedAt[ua.AchievementID] = ua.UnlockedAt
	}

	badges := make([]UserBadge, len(achievements))
	for i, a := range achievements {
		badges[i] = UserBadge{Achievement: a}
		if at, ok := unlockedAt[a.ID]; ok {
			badges[i].Unlocked = true
			t := at
			badges[i].UnlockedAt = &t
		}
	}
	return badges, nil
}

func (s *AchievementService) ListAll() ([]model.Achievement, error) {
	return s.AchievementRepo.FindAll()
}

func (s *AchievementService) Create(a *model.Achievement) error {
	return s.AchievementRepo.Create(a)
}

func (s *AchievementService) Update(a *model.Achievement) error {
	return s.AchievementRepo.Update(a)
}

func (s *AchievementService) Delete(ctx context.Context, id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("achievement_id = ?", id).Delete(&model.UserAchievement{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.Achievement{}, id).Error
	})
}

// Grant unlocks the achievement for the user and awards its reward
// points in the same transaction. Granting an already unlocked
// achievement is a no-op.
func (s *AchievementService) Grant(ctx context.Context, userID, achievementID uint) error {
	achievement, err := s.AchievementRepo.FindByID(achievementID)
	if err != nil {
		return err
	}

	already, err := s.AchievementRepo.IsUnlocked(userID, achievementID)
	if err != nil {
		return err
	}
	if already {
		return nil
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		unlock := &model.UserAchievement{
			UserID:        userID,
			AchievementID: achievementID,
			UnlockedAt:    time.Now(),
		}
		if err := tx.Create(unlock).Error; err != nil {
			return err
		}
		if achievement.RewardPoints > 0 {
			return awardPoints(tx, userID, achievement.RewardPoints)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Ranking.Invalidate(ctx)
	return nil
}

// CheckPointMilestones unlocks "points"-type achievements whose
// threshold the user has reached. Failures are logged, never surfaced:
// milestone checks ride along other operations.
func (s *AchievementService) CheckPointMilestones(ctx context.Context, userID uint) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		logger.Log.Warn("milestone check: user lookup failed", zap.Uint("user_id", userID), zap.Error(err))
		return
	}

	achievements, err := s.AchievementRepo.FindAll()
	if err != nil {
		logger.Log.Warn("milestone check: catalog read failed", zap.Error(err))
		return
	}

	for _, a := range achievements {
		if a.RequirementType != "points" || a.RequirementValue <= 0 {
			continue
		}
		if user.TotalPoints < a.RequirementValue {
			continue
		}
		if err := s.Grant(ctx, userID, a.ID); err != nil {
			logger.Log.Warn("milestone unlock failed",
				zap.Uint("user_id", userID),
				zap.Uint("achievement_id", a.ID),
				zap.Error(err))
		}
	}
}
