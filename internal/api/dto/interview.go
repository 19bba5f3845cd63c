package dto

import (
	"time"

	"github.com/goccy/go-json"
)

// GenerateInterviewDTO techstack 与 amount 兼容字符串和数组/数字两种写法
type GenerateInterviewDTO struct {
	Type      string          `json:"type"`
	Role      string          `json:"role"`
	Level     string          `json:"level"`
	Techstack json.RawMessage `json:"techstack"`
	Amount    json.RawMessage `json:"amount"`
	UserID    string          `json:"userid"`
}

type InterviewDTO struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Role       string    `json:"role"`
	Level      string    `json:"level"`
	Type       string    `json:"type"`
	Techstack  []string  `json:"techstack"`
	Questions  []string  `json:"questions"`
	Finalized  bool      `json:"finalized"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
}

type TranscriptLineDTO struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content"`
}

type CreateFeedbackDTO struct {
	Transcript []TranscriptLineDTO `json:"transcript" validate:"required,min=1,dive"`
	FeedbackID string              `json:"feedbackId"`
}

type CategoryScoreDTO struct {
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

type FeedbackDTO struct {
	ID                  string             `json:"id"`
	InterviewID         string             `json:"interviewId"`
	UserID              string             `json:"userId"`
	TotalScore          int                `json:"totalScore"`
	CategoryScores      []CategoryScoreDTO `json:"categoryScores"`
	Strengths           []string           `json:"strengths"`
	AreasForImprovement []string           `json:"areasForImprovement"`
	FinalAssessment     string             `json:"finalAssessment"`
	CreatedAt           time.Time          `json:"createdAt"`
}
