package repository

import (
	"time"
	"trueinvest_backend/internal/model"

	"gorm.io/gorm"
)

// GoalRepository handles the admin-managed goal catalog.

type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.Goal) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) Update(goal *model.Goal) error {
	return r.DB.Model(&model.Goal{}).
		Where("id = ?", goal.ID).
		Updates(map[string]interface{}{
			"title":         goal.Title,
			"description":   goal.Description,
			"category":      goal.Category,
			"target_value":  goal.TargetValue,
			"reward_points": goal.RewardPoints,
			"period":        goal.Period,
			"kind":          goal.Kind,
			"active":        goal.Active,
			"updated_at":    time.Now(),
		}).Error
}

func (r *GoalRepository) FindByID(id uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.DB.First(&goal, id).Error
	return &goal, err
}

func (r *GoalRepository) FindActive() ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.Where("active = ?", true).Order("created_at").Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) FindAll() ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.Order("created_at").Find(&goals).Error
	return goals, err
}
