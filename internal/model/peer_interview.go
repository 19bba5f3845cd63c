package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const PeerSessionStatusPending = "pending"

type PeerInterviewSession struct {
	ID           string  `gorm:"type:varchar(36);primaryKey"`
	ParticipantA string  `gorm:"type:varchar(36);not null;index:idx_participant_a"`
	ParticipantB *string `gorm:"type:varchar(36);index:idx_participant_b"`
	Status       string  `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PeerInterviewSession) TableName() string {
	return "peer_interview_sessions"
}

func (s *PeerInterviewSession) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type PeerInterviewQuestion struct {
	ID        uint64    `gorm:"primaryKey"`
	SessionID string    `gorm:"type:varchar(36);not null;index:idx_session_created,priority:1"`
	Question  string    `gorm:"type:text;not null"`
	AskedBy   string    `gorm:"type:varchar(36);not null"`
	CreatedAt time.Time `gorm:"index:idx_session_created,priority:2"`
}

func (PeerInterviewQuestion) TableName() string {
	return "peer_interview_questions"
}

type PeerInterviewFeedback struct {
	ID         uint64    `gorm:"primaryKey"`
	SessionID  string    `gorm:"type:varchar(36);not null;index:idx_session_created,priority:1"`
	ReviewerID string    `gorm:"type:varchar(36);not null"`
	RevieweeID string    `gorm:"type:varchar(36);not null"`
	Score      int       `gorm:"not null"`
	Comments   string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"index:idx_session_created,priority:2"`
}

func (PeerInterviewFeedback) TableName() string {
	return "peer_interview_feedbacks"
}
