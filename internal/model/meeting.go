package model

import "time"

type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "scheduled"
	MeetingCancelled MeetingStatus = "cancelled"
	MeetingDone      MeetingStatus = "done"
)

// swagger:model Meeting
type Meeting struct {
	BaseModel
	Title       string        `gorm:"size:255;not null" json:"title"`
	Description string        `gorm:"size:2000" json:"description"`
	Link        string        `gorm:"size:500" json:"link"`
	Status      MeetingStatus `gorm:"type:enum('scheduled','cancelled','done');default:'scheduled'" json:"status"`
	ScheduledAt time.Time     `gorm:"not null" json:"scheduledAt"`
	CreatedBy   uint          `gorm:"index;not null" json:"createdBy"`
}

func (Meeting) TableName() string {
	return "meetings"
}
