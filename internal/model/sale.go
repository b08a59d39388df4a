package model

import "time"

type SaleStatus string

const (
	SalePending   SaleStatus = "pending"
	SaleConfirmed SaleStatus = "confirmed"
	SaleCancelled SaleStatus = "cancelled"
)

// swagger:model Sale
type Sale struct {
	BaseModel
	UserID       uint       `gorm:"index;not null" json:"userId"`
	PropertyName string     `gorm:"size:255;not null" json:"propertyName"`
	ClientName   string     `gorm:"size:100" json:"clientName"`
	Value        float64    `gorm:"not null" json:"value"`
	Commission   float64    `gorm:"default:0" json:"commission"`
	PointsEarned int        `gorm:"default:0" json:"pointsEarned"`
	Status       SaleStatus `gorm:"type:enum('pending','confirmed','cancelled');default:'pending'" json:"status"`
	SoldAt       time.Time  `gorm:"not null" json:"soldAt"`
}

func (Sale) TableName() string {
	return "sales"
}
