package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TranscriptLine struct {
	Role    string `bson:"role" json:"role"`
	Content string `bson:"content" json:"content"`
}

// TranscriptModel 面试语音转写记录，反馈评分的原始输入
type TranscriptModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	InterviewID string             `bson:"interview_id"`
	UserID      string             `bson:"user_id"`
	Lines       []TranscriptLine   `bson:"lines"`
	CreatedAt   time.Time          `bson:"created_at"`
}
