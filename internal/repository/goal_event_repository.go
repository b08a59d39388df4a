package repository

import (
	"trueinvest_backend/internal/model"

	"gorm.io/gorm"
)

// GoalEventRepository reads the completion log. All writes to goal
// events happen inside GoalService transactions, together with the
// ledger update.

type GoalEventRepository struct {
	DB *gorm.DB
}

func NewGoalEventRepository(db *gorm.DB) *GoalEventRepository {
	return &GoalEventRepository{DB: db}
}

func (r *GoalEventRepository) CountByUserAndGoal(userID, goalID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.GoalEvent{}).
		Where("user_id = ? AND goal_id = ?", userID, goalID).
		Count(&count).Error
	return count, err
}

// FindLatestByUserAndGoal returns the most recent completion for the
// pair, ordering by completion time with id as tiebreaker so undo is
// strictly last-in-first-out.
func (r *GoalEventRepository) FindLatestByUserAndGoal(userID, goalID uint) (*model.GoalEvent, error) {
	var event model.GoalEvent
	err := r.DB.Where("user_id = ? AND goal_id = ?", userID, goalID).
		Order("completed_at DESC, id DESC").
		First(&event).Error
	return &event, err
}

func (r *GoalEventRepository) FindByUser(userID uint) ([]model.GoalEvent, error) {
	var events []model.GoalEvent
	err := r.DB.Where("user_id = ?", userID).Order("completed_at DESC, id DESC").Find(&events).Error
	return events, err
}

func (r *GoalEventRepository) FindByGoal(goalID uint) ([]model.GoalEvent, error) {
	var events []model.GoalEvent
	err := r.DB.Where("goal_id = ?", goalID).Find(&events).Error
	return events, err
}

// CountsForUser returns completion counts keyed by goal id.
func (r *GoalEventRepository) CountsForUser(userID uint) (map[uint]int64, error) {
	type row struct {
		GoalID uint
		N      int64
	}
	var rows []row
	err := r.DB.Model(&model.GoalEvent{}).
		Select("goal_id, COUNT(*) AS n").
		Where("user_id = ?", userID).
		Group("goal_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.GoalID] = r.N
	}
	return counts, nil
}
