package calls

import "time"

// ScheduledCall is a requested callback slot from the schedule-call form.
type ScheduledCall struct {
	ID            string  `gorm:"type:char(36);primaryKey"`
	Name          string  `gorm:"type:varchar(255);not null"`
	Phone         string  `gorm:"type:varchar(32);not null"`
	Email         *string `gorm:"type:varchar(255)"`
	ScheduledDate string  `gorm:"type:varchar(10);not null"` // YYYY-MM-DD
	ScheduledTime string  `gorm:"type:varchar(8);not null"`  // HH:MM

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (ScheduledCall) TableName() string { return "scheduled_calls" }
