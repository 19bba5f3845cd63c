package dto

import "time"

type PeerSessionDTO struct {
	ID           string    `json:"id"`
	ParticipantA string    `json:"participantA"`
	ParticipantB *string   `json:"participantB"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type PeerQuestionCreateDTO struct {
	SessionID string `json:"sessionId"`
	Question  string `json:"question" validate:"required"`
	AskedBy   string `json:"askedBy" validate:"required"`
}

type PeerQuestionDTO struct {
	ID        uint64    `json:"id"`
	SessionID string    `json:"sessionId"`
	Question  string    `json:"question"`
	AskedBy   string    `json:"askedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type PeerFeedbackCreateDTO struct {
	SessionID  string `json:"sessionId"`
	ReviewerID string `json:"reviewerId" validate:"required"`
	RevieweeID string `json:"revieweeId" validate:"required"`
	Score      int    `json:"score" validate:"min=0,max=100"`
	Comments   string `json:"comments"`
}

type PeerFeedbackDTO struct {
	ID         uint64    `json:"id"`
	SessionID  string    `json:"sessionId"`
	ReviewerID string    `json:"reviewerId"`
	RevieweeID string    `json:"revieweeId"`
	Score      int       `json:"score"`
	Comments   string    `json:"comments"`
	CreatedAt  time.Time `json:"createdAt"`
}
