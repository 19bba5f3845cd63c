package model

import "time"

type Streak struct {
	UserID    string     `gorm:"type:varchar(36);primaryKey"`
	Count     int        `gorm:"not null;default:0"`
	LastDate  *time.Time `gorm:"type:datetime(3)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Streak) TableName() string {
	return "streaks"
}
