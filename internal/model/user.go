package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID         string  `gorm:"type:varchar(36);primaryKey"`
	Name       string  `gorm:"type:varchar(100);not null"`
	Email      string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_email"`
	Password   string  `gorm:"type:varchar(255);not null"`
	ProfileURL *string `gorm:"type:varchar(512)"`
	ResumeURL  *string `gorm:"type:varchar(512)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (User) TableName() string {
	return "users"
}

func (s *User) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
