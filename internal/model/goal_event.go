package model

import "time"

// GoalEvent records one completion of a goal by a user. PointsAwarded is
// a snapshot of the goal's reward at completion time and is never
// re-derived, so later edits to the goal do not change past awards.
type GoalEvent struct {
	BaseModel
	UserID        uint      `gorm:"index:idx_user_goal;not null" json:"userId"`
	GoalID        uint      `gorm:"index:idx_user_goal;not null" json:"goalId"`
	PointsAwarded int       `gorm:"not null" json:"pointsAwarded"`
	CompletedAt   time.Time `gorm:"not null;index" json:"completedAt"`
}

func (GoalEvent) TableName() string {
	return "goal_events"
}
