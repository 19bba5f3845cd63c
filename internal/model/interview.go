package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Interview struct {
	ID         string    `gorm:"type:varchar(36);primaryKey"`
	UserID     string    `gorm:"type:varchar(36);not null;index:idx_user_created,priority:1"`
	Role       string    `gorm:"type:varchar(100);not null"`
	Level      string    `gorm:"type:varchar(50);not null"`
	Type       string    `gorm:"type:varchar(50);not null"`
	Techstack  []string  `gorm:"type:json;serializer:json"`
	Questions  []string  `gorm:"type:json;serializer:json"`
	Finalized  bool      `gorm:"not null;default:false;index:idx_finalized_created,priority:1"`
	CoverImage string    `gorm:"type:varchar(255)"`
	CreatedAt  time.Time `gorm:"index:idx_user_created,priority:2;index:idx_finalized_created,priority:2"`
	UpdatedAt  time.Time
}

func (Interview) TableName() string {
	return "interviews"
}

func (s *Interview) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
