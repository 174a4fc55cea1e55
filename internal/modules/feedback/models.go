package feedback

import "time"

type Feedback struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	Name         string `gorm:"type:varchar(255);not null"`
	Phone        string `gorm:"type:varchar(32);not null"`
	Feelings     string `gorm:"type:text;not null"`
	Highlights   string `gorm:"type:text;not null"`
	StayLocation string `gorm:"type:varchar(255);not null"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Feedback) TableName() string { return "feedback" }
