package model

import "time"

type UserRole string

const (
	Broker UserRole = "broker"
	Admin  UserRole = "admin"
)

// User is a broker profile. TotalPoints is the denormalized points
// ledger; it is only ever mutated together with the goal event log.
// swagger:model User
type User struct {
	BaseModel
	Name             string     `gorm:"size:100;not null" json:"name"`
	Email            string     `gorm:"size:100;unique;not null" json:"email"`
	Phone            string     `gorm:"size:30" json:"phone"`
	Password         string     `gorm:"size:100;not null" json:"-"`
	Role             UserRole   `gorm:"type:enum('broker','admin');default:'broker'" json:"role"`
	Photo            string     `gorm:"size:255" json:"photo"`
	TotalPoints      int        `gorm:"default:0;not null" json:"totalPoints"`
	ResetToken       string     `gorm:"size:36;index" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	LastSeen         time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// PublicProfile is the ranking projection of a user. Email and phone are
// deliberately excluded.
type PublicProfile struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Photo       string `json:"photo"`
	TotalPoints int    `json:"totalPoints"`
}
