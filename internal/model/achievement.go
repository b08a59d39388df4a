package model

import "time"

// Achievement is an admin-defined badge. RequirementType/Value describe
// what unlocks it (e.g. points >= 1000); only the "points" type is
// checked automatically, the rest are granted by an admin.
type Achievement struct {
	BaseModel
	Title            string `gorm:"size:200;not null" json:"title"`
	Description      string `gorm:"size:2000" json:"description"`
	Icon             string `gorm:"size:255" json:"icon"`
	RewardPoints     int    `gorm:"default:0" json:"rewardPoints"`
	RequirementType  string `gorm:"size:50" json:"requirementType"`
	RequirementValue int    `gorm:"default:0" json:"requirementValue"`
}

func (Achievement) TableName() string {
	return "achievements"
}

type UserAchievement struct {
	BaseModel
	UserID        uint      `gorm:"index:idx_user_achievement,unique;not null" json:"userId"`
	AchievementID uint      `gorm:"index:idx_user_achievement,unique;not null" json:"achievementId"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlockedAt"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
