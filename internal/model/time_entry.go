package model

import "time"

// TimeEntry is one day's attendance record: clock-in, later closed by
// clock-out. One entry per user per day.
// swagger:model TimeEntry
type TimeEntry struct {
	BaseModel
	UserID           uint       `gorm:"index:idx_user_entry_day,unique;not null" json:"userId"`
	EntryDate        string     `gorm:"size:10;index:idx_user_entry_day,unique;not null" json:"entryDate"` // YYYY-MM-DD
	ClockIn          time.Time  `gorm:"not null" json:"clockIn"`
	ClockOut         *time.Time `json:"clockOut,omitempty"`
	ClockInLocation  string     `gorm:"size:255" json:"clockInLocation"`
	ClockOutLocation string     `gorm:"size:255" json:"clockOutLocation"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}
