package model

import "time"

// Activity is a broker-logged event such as a client visit, meeting or
// lead contact. Type is a free-form tag (visit/meeting/lead/call).
// swagger:model Activity
type Activity struct {
	BaseModel
	UserID        uint      `gorm:"index;not null" json:"userId"`
	Type          string    `gorm:"size:50;not null" json:"type"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Description   string    `gorm:"size:2000" json:"description"`
	ClientName    string    `gorm:"size:100" json:"clientName"`
	ClientContact string    `gorm:"size:100" json:"clientContact"`
	PointsEarned  int       `gorm:"default:0" json:"pointsEarned"`
	Status        string    `gorm:"size:30;default:'done'" json:"status"`
	OccurredAt    time.Time `gorm:"not null" json:"occurredAt"`
}

func (Activity) TableName() string {
	return "activities"
}
