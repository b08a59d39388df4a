package service

import (
	"context"
	"errors"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/repository"
	"trueinvest_backend/internal/util"
	"trueinvest_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminService covers user administration: role changes and the
// destructive per-user cascades. Both cascades run as a single
// transaction so a failure leaves the user untouched.

type AdminService struct {
	UserRepo *repository.UserRepository
	Ranking  *RankingService
	DB       *gorm.DB
}

func NewAdminService(userRepo *repository.UserRepository, ranking *RankingService, db *gorm.DB) *AdminService {
	return &AdminService{UserRepo: userRepo, Ranking: ranking, DB: db}
}

func (s *AdminService) ListUsers(search string) ([]model.User, error) {
	return s.UserRepo.Search(search)
}

// UpdateUserRole promotes or demotes a user. An admin cannot strip their
// own admin role, which guarantees at least one admin remains reachable.
func (s *AdminService) UpdateUserRole(callerID, userID uint, role model.UserRole) (*model.User, error) {
	if role != model.Admin && role != model.Broker {
		return nil, errors.New("invalid role")
	}
	if callerID == userID && role != model.Admin {
		return nil, util.ErrSelfDemotion
	}
	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResetUserData wipes a user's history and zeroes their ledger while
// keeping the account itself. Events, attendance, sales, activities,
// unlocked achievements and notifications all go in one transaction.
func (s *AdminService) ResetUserData(ctx context.Context, userID uint) error {
	_, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUserNotFound
	}
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.purgeUserRows(tx, userID); err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("total_points", 0).Error
	})
	if err != nil {
		return err
	}

	s.Ranking.Invalidate(ctx)
	logger.Log.Info("user data reset", zap.Uint("user_id", userID))
	return nil
}

// DeleteUser removes the account and everything hanging off it.
func (s *AdminService) DeleteUser(ctx context.Context, callerID, userID uint) error {
	if callerID == userID {
		return util.ErrSelfDeletion
	}
	_, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUserNotFound
	}
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.purgeUserRows(tx, userID); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.User{}, userID).Error
	})
	if err != nil {
		return err
	}

	s.Ranking.Invalidate(ctx)
	logger.Log.Info("user deleted", zap.Uint("user_id", userID))
	return nil
}

func (s *AdminService) purgeUserRows(tx *gorm.DB, userID uint) error {
	purge := []interface{}{
		&model.GoalEvent{},
		&model.TimeEntry{},
		&model.Sale{},
		&model.Activity{},
		&model.UserAchievement{},
		&model.Notification{},
	}
	for _, m := range purge {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
