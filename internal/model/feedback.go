package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryScore struct {
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

type Feedback struct {
	ID                  string          `gorm:"type:varchar(36);primaryKey"`
	InterviewID         string          `gorm:"type:varchar(36);not null;uniqueIndex:idx_interview_user,priority:1"`
	UserID              string          `gorm:"type:varchar(36);not null;uniqueIndex:idx_interview_user,priority:2"`
	TotalScore          int             `gorm:"not null;default:0"`
	CategoryScores      []CategoryScore `gorm:"type:json;serializer:json"`
	Strengths           []string        `gorm:"type:json;serializer:json"`
	AreasForImprovement []string        `gorm:"type:json;serializer:json"`
	FinalAssessment     string          `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (Feedback) TableName() string {
	return "feedbacks"
}

func (s *Feedback) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
