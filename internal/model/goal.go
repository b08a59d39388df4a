package model

type GoalKind string

const (
	GoalOneTime   GoalKind = "one_time"
	GoalRecurring GoalKind = "recurring"
)

type GoalPeriod string

const (
	PeriodDaily   GoalPeriod = "daily"
	PeriodWeekly  GoalPeriod = "weekly"
	PeriodMonthly GoalPeriod = "monthly"
)

// Goal is an admin-defined target that awards points on completion.
// Period is informational only, nothing schedules or resets goals.
type Goal struct {
	BaseModel
	Title        string     `gorm:"size:200;not null" json:"title"`
	Description  string     `gorm:"size:2000" json:"description"`
	Category     string     `gorm:"size:50;not null" json:"category"`
	TargetValue  int        `gorm:"not null" json:"targetValue"`
	RewardPoints int        `gorm:"not null" json:"rewardPoints"`
	Period       GoalPeriod `gorm:"type:enum('daily','weekly','monthly');default:'monthly'" json:"period"`
	Kind         GoalKind   `gorm:"type:enum('one_time','recurring');default:'recurring'" json:"kind"`
	Active       bool       `gorm:"default:true" json:"active"`
}

func (Goal) TableName() string {
	return "goals"
}
