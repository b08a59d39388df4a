package model

type NotificationType string

const (
	NotificationMeeting          NotificationType = "meeting"
	NotificationMeetingCancelled NotificationType = "meeting_cancelled"
	NotificationSystem           NotificationType = "system"
)

// swagger:model Notification
type Notification struct {
	BaseModel
	UserID      uint             `gorm:"index;not null" json:"userId"`
	Type        NotificationType `gorm:"type:enum('meeting','meeting_cancelled','system');default:'system'" json:"type"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Message     string           `gorm:"size:2000" json:"message"`
	ReferenceID uint             `json:"referenceId"`
	Read        bool             `gorm:"default:false" json:"read"`
}

func (Notification) TableName() string {
	return "notifications"
}
